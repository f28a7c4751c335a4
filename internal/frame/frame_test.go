package frame

import (
	"reflect"
	"testing"
)

func TestFeed_PartialLineRetained(t *testing.T) {
	f := New()

	msgs := f.Feed([]byte("AB\nCD"))
	if !reflect.DeepEqual(msgs, []string{"AB"}) {
		t.Fatalf("expected [AB], got %v", msgs)
	}
	if f.Pending() == 0 {
		t.Fatal("expected partial line to be retained")
	}

	msgs = f.Feed([]byte("EF\n"))
	if !reflect.DeepEqual(msgs, []string{"CDEF"}) {
		t.Fatalf("expected [CDEF], got %v", msgs)
	}
	if f.Pending() != 0 {
		t.Fatalf("expected empty buffer, got %d pending bytes", f.Pending())
	}
}

func TestFeed_PartialLineNeverYielded(t *testing.T) {
	f := New()

	if msgs := f.Feed([]byte("incomplete")); msgs != nil {
		t.Fatalf("expected no messages for partial line, got %v", msgs)
	}
}

func TestFeed_BlankLinesDiscarded(t *testing.T) {
	f := New()

	if msgs := f.Feed([]byte("\n\n")); msgs != nil {
		t.Fatalf("expected no messages for blank lines, got %v", msgs)
	}
	if msgs := f.Feed([]byte("  \r\n")); msgs != nil {
		t.Fatalf("expected whitespace-only line to be discarded, got %v", msgs)
	}
}

func TestFeed_MultipleMessagesPerCall(t *testing.T) {
	f := New()

	msgs := f.Feed([]byte("one\ntwo\nthree\n"))
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
}

func TestFeed_TrimsCarriageReturn(t *testing.T) {
	f := New()

	msgs := f.Feed([]byte("Found fingerprint sensor!\r\n"))
	if !reflect.DeepEqual(msgs, []string{"Found fingerprint sensor!"}) {
		t.Fatalf("expected CR stripped, got %v", msgs)
	}
}

func TestFeed_ByteAtATime(t *testing.T) {
	f := New()

	var got []string
	for _, b := range []byte("NewID: 7\n") {
		got = append(got, f.Feed([]byte{b})...)
	}
	if !reflect.DeepEqual(got, []string{"NewID: 7"}) {
		t.Fatalf("expected [NewID: 7], got %v", got)
	}
}

package idgen

import (
	"strings"
	"testing"
)

func TestStudentID_ZeroPadded(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{9, "STU0009"},
		{0, "STU0000"},
		{127, "STU0127"},
		{10000, "STU10000"},
	}
	for _, c := range cases {
		if got := StudentID(c.in); got != c.want {
			t.Errorf("StudentID(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStudentID_Deterministic(t *testing.T) {
	if StudentID(42) != StudentID(42) {
		t.Error("expected identical IDs for the same fingerprint")
	}
}

func TestEventID(t *testing.T) {
	id, err := EventID()
	if err != nil {
		t.Fatalf("EventID: %v", err)
	}
	if !strings.HasPrefix(id, "ev-") {
		t.Errorf("expected ev- prefix, got %q", id)
	}
	if len(id) != len("ev-")+Length {
		t.Errorf("expected length %d, got %d", len("ev-")+Length, len(id))
	}

	other, err := EventID()
	if err != nil {
		t.Fatalf("EventID: %v", err)
	}
	if id == other {
		t.Error("expected distinct event IDs")
	}
}

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/model"
	"github.com/alfredjeanlab/rollcall/internal/roster"
	"github.com/alfredjeanlab/rollcall/internal/store/snapshot"
)

func TestReplayStream_BackToBackScans(t *testing.T) {
	r := roster.New()
	st := snapshot.New(filepath.Join(t.TempDir(), "students.dat"))
	eng := engine.New(r, st, nil, nil, nil)

	// Two terminal records with nothing between them: a live sensor never
	// produces this, but a transcript does, and both must resolve.
	in := strings.NewReader("NewID: 7\nNewID: 8\n")
	if err := replayStream(context.Background(), in, eng); err != nil {
		t.Fatalf("replayStream: %v", err)
	}

	if r.Len() != 2 {
		t.Fatalf("expected both scans enrolled, got %d records", r.Len())
	}
	for _, fp := range []int{7, 8} {
		if _, ok := r.FindByFingerprintID(fp); !ok {
			t.Errorf("expected fingerprint %d enrolled", fp)
		}
	}
}

func TestReplayStream_MarksKnownStudents(t *testing.T) {
	r := roster.NewFrom([]model.Student{
		{StudentID: "STU0007", Name: "Lin", FingerprintID: 7, Status: model.StatusAbsent},
	})
	st := snapshot.New(filepath.Join(t.TempDir(), "students.dat"))
	eng := engine.New(r, st, nil, nil, nil)

	in := strings.NewReader("Image taken\nFound ID #7 with confidence of 112\nNewID: 7\n")
	if err := replayStream(context.Background(), in, eng); err != nil {
		t.Fatalf("replayStream: %v", err)
	}

	s, _ := r.FindByFingerprintID(7)
	if s.Status != model.StatusPresent {
		t.Errorf("expected replayed scan to mark Lin present, got %s", s.Status)
	}
	if r.Len() != 1 {
		t.Errorf("replaying a known fingerprint must not grow the roster, got %d", r.Len())
	}
}

package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "students.dat"))
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	students := []model.Student{
		{StudentID: "STU0003", Name: "Ada", FingerprintID: 3, Status: model.StatusPresent, LastScan: "2026-08-28 09:00:00"},
		{StudentID: "STU0001", Name: "Lin", FingerprintID: 1, Status: model.StatusAbsent},
		{StudentID: "STU0007", Name: "Joe, Jr.", FingerprintID: 7, Status: model.StatusPresent, LastScan: "2026-08-28 09:05:00"},
	}
	if err := s.Save(ctx, students); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, students) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, students)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := testStore(t)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load of missing snapshot must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty roster, got %d records", len(got))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.path, []byte("not json at all\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load of corrupt snapshot must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty roster, got %d records", len(got))
	}
}

func TestLoad_TruncatedTailKeepsPrefix(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	students := []model.Student{
		{StudentID: "STU0001", Name: "Lin", FingerprintID: 1, Status: model.StatusAbsent},
		{StudentID: "STU0002", Name: "Ada", FingerprintID: 2, Status: model.StatusAbsent},
	}
	if err := s.Save(ctx, students); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Chop the file mid-way through the last record.
	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.path, data[:len(data)-20], 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].StudentID != "STU0001" {
		t.Errorf("expected the intact prefix record, got %+v", got)
	}
}

func TestSave_OverwritesPrevious(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []model.Student{{StudentID: "STU0001", FingerprintID: 1, Status: model.StatusAbsent}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []model.Student{{StudentID: "STU0002", FingerprintID: 2, Status: model.StatusAbsent}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].StudentID != "STU0002" {
		t.Errorf("expected snapshot fully replaced, got %+v", got)
	}
}

func TestClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []model.Student{{StudentID: "STU0001", FingerprintID: 1, Status: model.StatusAbsent}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty roster after clear, got %d records", len(got))
	}

	// Clearing twice is fine.
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

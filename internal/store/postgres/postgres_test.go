package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Store{db: db}, mock
}

func TestLoad(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"student_id", "name", "fingerprint_id", "status", "last_scan"}).
		AddRow("STU0003", "Ada", 3, "Present", "2026-08-28 09:00:00").
		AddRow("STU0001", "Lin", 1, "Absent", nil)
	mock.ExpectQuery("SELECT student_id, name, fingerprint_id, status, last_scan").
		WillReturnRows(rows)

	students, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if students[0].StudentID != "STU0003" || students[0].LastScan != "2026-08-28 09:00:00" {
		t.Errorf("unexpected first record: %+v", students[0])
	}
	if students[1].LastScan != "" {
		t.Errorf("expected NULL last_scan to map to empty string, got %q", students[1].LastScan)
	}
	if students[1].Status != model.StatusAbsent {
		t.Errorf("expected Absent, got %s", students[1].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoad_QueryFailureDegradesToEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT student_id").WillReturnError(context.DeadlineExceeded)

	students, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load must not propagate read failures: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("expected empty roster, got %d records", len(students))
	}
}

func TestSave_ReplacesRosterInOneTransaction(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM students").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO students").
		WithArgs(0, "STU0001", "Lin", 1, "Present", "2026-08-28 09:05:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO students").
		WithArgs(1, "STU0002", "Ada", 2, "Absent", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	students := []model.Student{
		{StudentID: "STU0001", Name: "Lin", FingerprintID: 1, Status: model.StatusPresent, LastScan: "2026-08-28 09:05:00"},
		{StudentID: "STU0002", Name: "Ada", FingerprintID: 2, Status: model.StatusAbsent},
	}
	if err := s.Save(context.Background(), students); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSave_RollsBackOnInsertFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM students").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO students").
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	err := s.Save(context.Background(), []model.Student{
		{StudentID: "STU0001", Name: "Lin", FingerprintID: 1, Status: model.StatusAbsent},
	})
	if err == nil {
		t.Fatal("expected save failure to propagate")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClear(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM students").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

func queryLoadRoster(ctx context.Context, db *sql.DB) ([]model.Student, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT student_id, name, fingerprint_id, status, last_scan
		FROM students
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var st model.Student
		var lastScan sql.NullString
		if err := rows.Scan(&st.StudentID, &st.Name, &st.FingerprintID, &st.Status, &lastScan); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		if lastScan.Valid {
			st.LastScan = lastScan.String
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}
	return students, nil
}

func queryReplaceRoster(ctx context.Context, db *sql.DB, students []model.Student) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}

	for i, st := range students {
		var lastScan sql.NullString
		if st.LastScan != "" {
			lastScan = sql.NullString{String: st.LastScan, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO students (position, student_id, name, fingerprint_id, status, last_scan)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			i, st.StudentID, st.Name, st.FingerprintID, st.Status.String(), lastScan)
		if err != nil {
			return fmt.Errorf("insert student %s: %w", st.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster: %w", err)
	}
	return nil
}

func queryClearRoster(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}
	return nil
}

// Package export renders the roster for external consumers.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

// CSVHeader is the fixed header row of the attendance export.
const CSVHeader = "Student ID,Name,Fingerprint ID,Status,Last Scan"

// WriteCSV writes one comma-separated row per student under the fixed
// header. Embedded commas are not escaped; downstream spreadsheets were
// built against this exact output and changing the quoting rules would
// break them.
func WriteCSV(w io.Writer, students []model.Student) error {
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range students {
		_, err := fmt.Fprintf(w, "%s,%s,%d,%s,%s\n",
			s.StudentID, s.Name, s.FingerprintID, s.Status, s.LastScan)
		if err != nil {
			return fmt.Errorf("write csv row %s: %w", s.StudentID, err)
		}
	}
	return nil
}

// jsonlHeader is the first record of a JSONL export.
type jsonlHeader struct {
	Version      string    `json:"version"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	StudentCount int       `json:"student_count"`
}

// jsonlRecord wraps a single student line with a type discriminator.
type jsonlRecord struct {
	Type string        `json:"type"`
	Data model.Student `json:"data"`
}

// WriteJSONL writes the roster as JSONL: a header record followed by one
// student record per line. Used for off-site backups.
func WriteJSONL(w io.Writer, students []model.Student) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(jsonlHeader{
		Version:      "1",
		Type:         "header",
		Timestamp:    time.Now().UTC(),
		StudentCount: len(students),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, s := range students {
		if err := enc.Encode(jsonlRecord{Type: "student", Data: s}); err != nil {
			return fmt.Errorf("encode student %s: %w", s.StudentID, err)
		}
	}
	return nil
}

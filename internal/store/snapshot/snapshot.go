// Package snapshot implements store.RosterStore as a single JSONL file.
//
// The file begins with a header record (version, count, write time)
// followed by one student record per line. The format is private to
// rollcall; it is not an interchange format.
package snapshot

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alfredjeanlab/rollcall/internal/model"
	"github.com/alfredjeanlab/rollcall/internal/store"
)

// header is the first JSONL record in a snapshot file.
type header struct {
	Version      string    `json:"version"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	StudentCount int       `json:"student_count"`
}

// record wraps a single student line with a type discriminator.
type record struct {
	Type string        `json:"type"`
	Data model.Student `json:"data"`
}

// Store reads and writes roster snapshots at a fixed path.
type Store struct {
	path string
}

// Compile-time check that Store implements store.RosterStore.
var _ store.RosterStore = (*Store)(nil)

// New creates a snapshot store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the snapshot. A missing, truncated, or corrupt file degrades
// to an empty roster: the in-memory state is rebuilt by future scans, and
// refusing to start would be worse than starting fresh.
func (s *Store) Load(ctx context.Context) ([]model.Student, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, nil
	}
	if h.Type != "header" {
		return nil, nil
	}

	var students []model.Student
	for {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Partial write or corruption mid-file: keep what decoded
			// cleanly rather than discarding the whole roster.
			break
		}
		if rec.Type != "student" {
			continue
		}
		students = append(students, rec.Data)
	}
	return students, nil
}

// Save rewrites the whole snapshot. The write goes to a temp file in the
// same directory and is renamed into place, so a crash mid-write leaves
// the previous snapshot intact.
func (s *Store) Save(ctx context.Context, students []model.Student) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:      "1",
		Type:         "header",
		Timestamp:    time.Now().UTC(),
		StudentCount: len(students),
	}); err != nil {
		tmp.Close()
		return fmt.Errorf("encode header: %w", err)
	}
	for _, st := range students {
		if err := enc.Encode(record{Type: "student", Data: st}); err != nil {
			tmp.Close()
			return fmt.Errorf("encode student %s: %w", st.StudentID, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot file. A snapshot that never existed is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}

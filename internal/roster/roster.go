// Package roster holds the in-memory collection of enrolled students.
//
// The roster is ordered (insertion order is display order) and guarded by
// a single RWMutex. All mutation happens through the reconciliation
// engine; no other component writes to it.
package roster

import (
	"sync"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

// Roster is an ordered, insertion-preserving collection of students,
// addressable by fingerprint ID. Lookup is a linear scan; the roster is
// small and the fingerprint-ID uniqueness invariant means at most one
// record can match.
type Roster struct {
	mu       sync.RWMutex
	students []model.Student
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// NewFrom creates a roster seeded with the given records, preserving order.
func NewFrom(students []model.Student) *Roster {
	r := &Roster{students: make([]model.Student, len(students))}
	copy(r.students, students)
	return r
}

// Students returns a snapshot copy of all records in display order.
func (r *Roster) Students() []model.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len returns the number of enrolled students.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}

// FindByFingerprintID returns the record whose fingerprint ID matches
// exactly, or false if no student has been enrolled for it.
func (r *Roster) FindByFingerprintID(id int) (model.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.FingerprintID == id {
			return s, true
		}
	}
	return model.Student{}, false
}

// MarkPresent sets the matching student's status to Present with the given
// scan timestamp and returns the updated record. Returns false if no
// record matches.
func (r *Roster) MarkPresent(id int, scannedAt string) (model.Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.students {
		if r.students[i].FingerprintID == id {
			r.students[i].Status = model.StatusPresent
			r.students[i].LastScan = scannedAt
			return r.students[i], true
		}
	}
	return model.Student{}, false
}

// Add appends a newly enrolled student to the end of the roster.
func (r *Roster) Add(s model.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, s)
}

// Clear removes every record.
func (r *Roster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = nil
}

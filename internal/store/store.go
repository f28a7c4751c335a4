// Package store defines the persistence boundary for the roster.
package store

import (
	"context"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

// RosterStore persists the roster as a whole-object snapshot: every save
// rewrites the complete ordered student list. The roster is small, so
// snapshot-on-every-mutation keeps recovery trivial.
type RosterStore interface {
	// Load returns the persisted roster in stored order. A missing or
	// unreadable snapshot yields an empty roster, never an error; the
	// system must always be able to start.
	Load(ctx context.Context) ([]model.Student, error)

	// Save overwrites the snapshot with the given students. Failures are
	// returned to the caller; in-memory state stays authoritative until
	// the next successful write.
	Save(ctx context.Context, students []model.Student) error

	// Clear removes the snapshot so a future Load yields an empty roster.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Package idgen generates student and event identifiers.
//
// Student IDs are deterministic: a fixed prefix plus the zero-padded
// fingerprint ID, so re-enrolling the same template always yields the same
// ID. Event IDs are random nanoids, used to tag notifications published on
// the bus.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// StudentPrefix is prepended to every generated student ID.
const StudentPrefix = "STU"

// Alphabet defines the character set used for random event IDs.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters in an event ID.
var Length = 10

// StudentID derives the canonical student ID for a fingerprint ID,
// e.g. fingerprint 9 -> "STU0009".
func StudentID(fingerprintID int) string {
	return fmt.Sprintf("%s%04d", StudentPrefix, fingerprintID)
}

// EventID returns a new random event identifier.
func EventID() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return "ev-" + id, nil
}

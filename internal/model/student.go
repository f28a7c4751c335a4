// Package model defines the core records shared across rollcall.
package model

// PresenceStatus represents whether a student has scanned in today.
type PresenceStatus string

const (
	StatusAbsent  PresenceStatus = "Absent"
	StatusPresent PresenceStatus = "Present"
)

// String returns the string representation of the status.
func (s PresenceStatus) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s PresenceStatus) IsValid() bool {
	switch s {
	case StatusAbsent, StatusPresent:
		return true
	}
	return false
}

// Student is a single enrolled subject. FingerprintID is assigned by the
// sensor when the template is stored and never changes for the life of the
// record; StudentID is the human-facing identifier.
type Student struct {
	StudentID     string         `json:"student_id"`
	Name          string         `json:"name"`
	FingerprintID int            `json:"fingerprint_id"`
	Status        PresenceStatus `json:"status"`
	LastScan      string         `json:"last_scan,omitempty"` // formatted "2006-01-02 15:04:05", empty until first scan
}

// TimestampFormat is the layout used for Student.LastScan values.
const TimestampFormat = "2006-01-02 15:04:05"

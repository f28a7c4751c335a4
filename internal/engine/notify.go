package engine

import "github.com/alfredjeanlab/rollcall/internal/model"

// Notifier is the UI notification surface. The engine never blocks on it;
// the enrollment name prompt is the only request/response interaction and
// goes through Prompter instead.
type Notifier interface {
	// Status reports a one-line status message.
	Status(text string)
	// Connection reports device connectivity.
	Connection(text string, healthy bool)
	// ProgressShown opens a capture progress indication.
	ProgressShown(title, text string)
	// ProgressUpdated advances an open progress indication.
	ProgressUpdated(text string)
	// ProgressHidden clears any progress indication.
	ProgressHidden()
	// AttendanceMarked reports a successful match resolution.
	AttendanceMarked(s model.Student)
	// StudentEnrolled reports a successful enroll resolution.
	StudentEnrolled(s model.Student)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Status(string)                  {}
func (NopNotifier) Connection(string, bool)        {}
func (NopNotifier) ProgressShown(string, string)   {}
func (NopNotifier) ProgressUpdated(string)         {}
func (NopNotifier) ProgressHidden()                {}
func (NopNotifier) AttendanceMarked(model.Student) {}
func (NopNotifier) StudentEnrolled(model.Student)  {}

package main

import (
	"fmt"
	"os"

	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/model"
	"github.com/alfredjeanlab/rollcall/internal/ui"
)

// consoleNotifier prints notifications to the operator's terminal. It is
// the headless stand-in for the original status bar and dialogs.
type consoleNotifier struct{}

func (consoleNotifier) Status(text string) {
	fmt.Println(text)
}

func (consoleNotifier) Connection(text string, healthy bool) {
	if healthy {
		fmt.Println(ui.RenderPresent(text))
	} else {
		fmt.Fprintln(os.Stderr, text)
	}
}

func (consoleNotifier) ProgressShown(title, text string) {
	fmt.Printf("%s %s\n", ui.RenderAccent("["+title+"]"), text)
}

func (consoleNotifier) ProgressUpdated(text string) {
	fmt.Printf("%s %s\n", ui.RenderAccent("[...]"), text)
}

func (consoleNotifier) ProgressHidden() {}

func (consoleNotifier) AttendanceMarked(s model.Student) {
	fmt.Printf("%s %s (ID: %s) at %s\n",
		ui.RenderPresent("Attendance marked:"), s.Name, s.StudentID, s.LastScan)
}

func (consoleNotifier) StudentEnrolled(s model.Student) {
	fmt.Printf("%s %s (ID: %s, FP: %d)\n",
		ui.RenderPresent("Student enrolled:"), s.Name, s.StudentID, s.FingerprintID)
}

// multiNotifier fans every notification out to all targets.
type multiNotifier []engine.Notifier

func (m multiNotifier) Status(text string) {
	for _, n := range m {
		n.Status(text)
	}
}

func (m multiNotifier) Connection(text string, healthy bool) {
	for _, n := range m {
		n.Connection(text, healthy)
	}
}

func (m multiNotifier) ProgressShown(title, text string) {
	for _, n := range m {
		n.ProgressShown(title, text)
	}
}

func (m multiNotifier) ProgressUpdated(text string) {
	for _, n := range m {
		n.ProgressUpdated(text)
	}
}

func (m multiNotifier) ProgressHidden() {
	for _, n := range m {
		n.ProgressHidden()
	}
}

func (m multiNotifier) AttendanceMarked(s model.Student) {
	for _, n := range m {
		n.AttendanceMarked(s)
	}
}

func (m multiNotifier) StudentEnrolled(s model.Student) {
	for _, n := range m {
		n.StudentEnrolled(s)
	}
}

// Package protocol translates the sensor's free-text narration into a
// small set of structured events and tracks the capture phase across an
// enrollment or recognition cycle.
//
// The device emits human-readable progress lines interleaved with exactly
// one structured record per cycle ("NewID:<n>"). Classification is
// substring/prefix based and case-sensitive; the first matching rule wins.
package protocol

import (
	"strconv"
	"strings"
)

// Progress texts surfaced to the operator for each capture stage.
const (
	textImageTaken      = "Capturing fingerprint image..."
	textEnrolling       = "Enrolling new fingerprint..."
	textRemoveFinger    = "Please remove your finger..."
	textSecondPlacement = "Please place the same finger again..."
	textCreatingModel   = "Creating fingerprint model..."
	textStoringModel    = "Storing fingerprint data..."
	textEnrollDone      = "Enrollment complete!"
	textMatchFound      = "Fingerprint recognized! Marking attendance..."
)

// terminalPrefix introduces the structured fingerprint-ID record.
const terminalPrefix = "NewID:"

// Classify inspects one framed message against the current phase and
// returns the event it produces plus the next phase. Unmatched narration
// yields EventUnrecognized and leaves the phase unchanged.
func Classify(line string, phase Phase) (Event, Phase) {
	switch {
	case strings.Contains(line, "Image taken") && phase == PhaseIdle:
		return Event{Kind: EventProgressStarted, Text: textImageTaken, Raw: line}, PhaseImageCaptured
	case strings.Contains(line, "enrolling new fingerprint") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textEnrolling, Raw: line}, PhaseEnrolling
	case strings.Contains(line, "Remove finger") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textRemoveFinger, Raw: line}, PhaseAwaitingFingerRemoval
	case strings.Contains(line, "Place same finger again") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textSecondPlacement, Raw: line}, PhaseAwaitingSecondPlacement
	case strings.Contains(line, "Creating model") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textCreatingModel, Raw: line}, PhaseModelCreated
	case strings.Contains(line, "Storing model") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textStoringModel, Raw: line}, PhaseModelStored
	case strings.Contains(line, "Enrollment successful") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textEnrollDone, Raw: line}, PhaseEnrollmentComplete
	case strings.Contains(line, "Found ID") && phase.Capturing():
		return Event{Kind: EventProgressUpdate, Text: textMatchFound, Raw: line}, PhaseMatchFound
	case strings.HasPrefix(line, terminalPrefix):
		return classifyTerminal(line), phase
	case strings.Contains(line, "Found fingerprint sensor"):
		return Event{Kind: EventSensorReady, Raw: line}, PhaseIdle
	case strings.Contains(line, "Waiting for valid finger"):
		return Event{Kind: EventIdle, Raw: line}, PhaseIdle
	}
	return Event{Kind: EventUnrecognized, Raw: line}, phase
}

// classifyTerminal parses the payload of a "NewID:<n>" line. A missing or
// non-numeric payload must not crash the pipeline; it degrades to
// EventMalformedTerminal so the caller can clear any stale progress
// indication.
func classifyTerminal(line string) Event {
	payload := strings.TrimSpace(strings.TrimPrefix(line, terminalPrefix))
	id, err := strconv.Atoi(payload)
	if err != nil || id < 0 {
		return Event{Kind: EventMalformedTerminal, Raw: line}
	}
	return Event{Kind: EventTerminalID, FingerprintID: id, Raw: line}
}

// Machine holds the capture phase for a single device stream and applies
// Classify to each message in arrival order. It is not safe for concurrent
// use; the reader loop is its only caller.
type Machine struct {
	phase Phase
}

// NewMachine creates a machine starting in the idle phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseIdle}
}

// Next classifies line, advances the phase, and returns the event.
func (m *Machine) Next(line string) Event {
	ev, next := Classify(line, m.phase)
	m.phase = next
	return ev
}

// Phase returns the current capture phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

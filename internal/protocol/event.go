package protocol

// EventKind classifies a framed device message for the reconciliation
// engine.
type EventKind string

const (
	// EventProgressStarted opens a new capture progress indication.
	EventProgressStarted EventKind = "progress_started"
	// EventProgressUpdate advances an already-open progress indication.
	EventProgressUpdate EventKind = "progress_update"
	// EventTerminalID carries the fingerprint ID from a structured
	// "NewID:<n>" line; the one message shape that triggers a resolution.
	EventTerminalID EventKind = "terminal_id"
	// EventMalformedTerminal is a "NewID:" line whose payload did not parse.
	EventMalformedTerminal EventKind = "malformed_terminal"
	// EventSensorReady means the sensor was detected at startup.
	EventSensorReady EventKind = "sensor_ready"
	// EventIdle means the device is waiting for a finger.
	EventIdle EventKind = "idle"
	// EventUnrecognized is narration no rule matched; callers ignore it.
	EventUnrecognized EventKind = "unrecognized"
)

// Event is one classified device message.
type Event struct {
	Kind EventKind
	// Text is the operator-facing progress text for progress events.
	Text string
	// FingerprintID is set for EventTerminalID only.
	FingerprintID int
	// Raw is the original message line, kept for logging.
	Raw string
}

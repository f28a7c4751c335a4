package protocol

// Phase tracks where the sensor is within an enrollment or recognition
// cycle. It is transient state: reset to Idle whenever the device reports
// it is waiting for input, and never persisted.
type Phase string

const (
	PhaseIdle                    Phase = "idle"
	PhaseImageCaptured           Phase = "image_captured"
	PhaseEnrolling               Phase = "enrolling"
	PhaseAwaitingFingerRemoval   Phase = "awaiting_finger_removal"
	PhaseAwaitingSecondPlacement Phase = "awaiting_second_placement"
	PhaseModelCreated            Phase = "model_created"
	PhaseModelStored             Phase = "model_stored"
	PhaseEnrollmentComplete      Phase = "enrollment_complete"
	PhaseMatchFound              Phase = "match_found"
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// Capturing reports whether the device is mid-cycle, i.e. an image has been
// taken but the cycle has not been reset to idle yet.
func (p Phase) Capturing() bool {
	return p != PhaseIdle
}

package domain

// Abort reasons for plan-intrinsic violations. A violation terminates the
// replay at the offending step and the score accumulated so far stands; it is
// an expected outcome for defective plans, never a Go error.
const (
	ReasonBackwardsTime  = "cannot go backwards in time"
	ReasonStartTooEarly  = "start time too early"
	ReasonAlreadyMet     = "person already met"
	ReasonInvalidMeeting = "invalid meeting time or location"
	ReasonUnknownStep    = "unknown plan format"
)

// ReplayResult is the outcome of replaying one step sequence. Score counts
// valid meetings. When Aborted is set, StepIndex identifies the offending step
// and Reason names the violated rule; otherwise StepIndex is -1 and every step
// was applied.
type ReplayResult struct {
	Score     int
	Aborted   bool
	Reason    string
	StepIndex int
}

package domain

import "time"

// StepKind discriminates the itinerary step variants. Both plan adapters
// (free-text sentences and structured records) emit the same variant set, so
// the replay loop never needs to know which adapter produced a step.
type StepKind int

const (
	// Establishes the initial position and time; a no-op during replay.
	StepStart StepKind = iota

	// Move to Location, advancing the clock by the matrix travel time.
	StepTravel

	// Advance the clock to At. Time must move strictly forward.
	StepWait

	// Synchronize the clock to At (structured records carry explicit start
	// times). Unlike StepWait, arriving exactly at the current time is allowed.
	StepArrive

	// Meet Person at the current location and time.
	StepMeet

	// A sentence that matched none of the recognized step formats. Replay
	// aborts when it reaches one, keeping the score accumulated so far.
	StepUnknown
)

func (k StepKind) String() string {
	switch k {
	case StepStart:
		return "start"
	case StepTravel:
		return "travel"
	case StepWait:
		return "wait"
	case StepArrive:
		return "arrive"
	case StepMeet:
		return "meet"
	}
	return "unknown"
}

// Step is one typed itinerary action. Only the fields relevant to Kind are
// set; Raw preserves the source sentence (or record) for diagnostics.
type Step struct {
	Kind     StepKind
	Location string
	Person   string
	At       time.Time
	Raw      string
}

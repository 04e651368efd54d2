package domain

import "time"

// Constraint describes one person's meeting requirements: where the meeting
// must happen, the availability window, and how long the meeting must last.
// A meeting is valid only if it is fully contained in [Start, End].
type Constraint struct {
	Person         string
	Location       string
	Start          time.Time
	End            time.Time
	MeetingMinutes int
}

// ConstraintRow is a raw dataset constraint tuple before window parsing:
// (person, location, "<start> to <end>", meeting minutes).
type ConstraintRow struct {
	Person   string
	Location string
	Window   string
	Minutes  int
}

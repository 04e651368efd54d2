package domain

import "time"

// Sample is one meeting-planning benchmark record: the start conditions and
// per-person constraints, the travel-time matrix between named locations, the
// model's candidate plan text, and the golden plan as pre-segmented sentences.
type Sample struct {
	ID            string
	NumPeople     int
	StartLocation string
	StartTime     string
	Constraints   []ConstraintRow
	DistMatrix    map[string]map[string]int
	CandidateText string
	GoldenPlan    []string
}

// Evaluation is the scored outcome of one sample: the candidate plan's score,
// the golden plan's score under identical constraints, and whether the two
// match. Correctness is score equivalence, not plan identity, so alternate
// itineraries achieving the same meetings count as correct.
type Evaluation struct {
	SampleID       string
	Task           string
	NumPeople      int
	CandidateScore int
	GoldenScore    int
	Correct        bool
	EvaluatedAt    time.Time
}

// ScorePair holds the two replay scores for one sample, in cacheable form.
type ScorePair struct {
	CandidateScore int `json:"candidate_score"`
	GoldenScore    int `json:"golden_score"`
}

// CalendarSample is one calendar-scheduling benchmark record. The response and
// golden solution are free text containing a "Day, H:MM - H:MM" slot.
type CalendarSample struct {
	ID        string
	NumPeople int
	NumDays   int
	Response  string
	Golden    string
}

// TripSample is one trip-planning benchmark record. Cities and Durations are
// the golden itinerary as "**"-separated lists; Response is the model text.
type TripSample struct {
	ID        string
	Cities    string
	Durations string
	Response  string
}

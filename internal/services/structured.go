package services

import (
	"encoding/json"
	"strings"

	"meeting-eval-service/internal/domain"
)

// PlanRecord is one entry of a structured (JSON) plan. Plans that do not
// follow the few-shot sentence format are converted upstream into a list of
// these records before evaluation.
type PlanRecord struct {
	Location   string `json:"location"`
	PersonName string `json:"person_name"`
	StartTime  string `json:"start_time"`
}

// ParseStructuredPlan converts structured records into the shared step variant
// set. The first record is the starting position and is excluded from replay.
// For each later record a travel step is inferred when the location differs
// from the previous record's, followed by an arrival that synchronizes the
// clock to the record's start time, and a meet step when a person is named.
func ParseStructuredPlan(records []PlanRecord) []domain.Step {
	if len(records) == 0 {
		return nil
	}

	steps := []domain.Step{{
		Kind:     domain.StepStart,
		Location: records[0].Location,
		Raw:      recordRaw(records[0]),
	}}

	location := records[0].Location
	for _, rec := range records[1:] {
		raw := recordRaw(rec)

		if rec.Location != "" && rec.Location != location {
			steps = append(steps, domain.Step{
				Kind:     domain.StepTravel,
				Location: rec.Location,
				Raw:      raw,
			})
			location = rec.Location
		}

		at, err := domain.ParseClock(strings.TrimSpace(rec.StartTime))
		if err != nil {
			steps = append(steps, domain.Step{Kind: domain.StepUnknown, Raw: raw})
			continue
		}
		steps = append(steps, domain.Step{Kind: domain.StepArrive, At: at, Raw: raw})

		if rec.PersonName != "" {
			// Placeholder names like "N/A" have no constraint entry; the
			// replay skips them as waypoints rather than aborting.
			steps = append(steps, domain.Step{
				Kind:   domain.StepMeet,
				Person: rec.PersonName,
				Raw:    raw,
			})
		}
	}

	return steps
}

func recordRaw(rec PlanRecord) string {
	b, err := json.Marshal(rec)
	if err != nil {
		return rec.Location + "/" + rec.PersonName + "/" + rec.StartTime
	}
	return string(b)
}

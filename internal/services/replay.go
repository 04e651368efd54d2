package services

import (
	"fmt"
	"time"

	"meeting-eval-service/internal/domain"
	"meeting-eval-service/internal/ports"
)

// ReplayOptions tunes adapter-specific replay behavior.
type ReplayOptions struct {
	// Skip meet steps naming a person with no constraint entry instead of
	// failing the sample. Structured plans use this: their records may carry
	// placeholder person names for pure travel waypoints.
	SkipUnknownPersons bool
}

// Replay runs the itinerary state machine over a step sequence. Starting from
// the given location and time it applies each step in order, counting valid
// meetings. The first violated rule aborts the remaining replay and the score
// accumulated so far stands; the result records the abort point and reason.
//
// Only data-integrity failures return an error: a travel-time lookup with no
// matrix entry, or (for text plans) a meeting with an unconstrained person.
// Those indicate bad input for the sample, not a defective plan.
func Replay(
	steps []domain.Step,
	constraints map[string]domain.Constraint,
	startLocation string,
	startTime time.Time,
	travel ports.TravelTimeProvider,
	opts ReplayOptions,
) (domain.ReplayResult, error) {
	location := startLocation
	now := startTime
	met := make(map[string]bool, len(constraints))
	score := 0

	abort := func(i int, reason string) domain.ReplayResult {
		return domain.ReplayResult{
			Score:     score,
			Aborted:   true,
			Reason:    reason,
			StepIndex: i,
		}
	}

	for i, step := range steps {
		switch step.Kind {
		case domain.StepStart:
			// Establishes initial state only.

		case domain.StepTravel:
			minutes, err := travel.TravelMinutes(location, step.Location)
			if err != nil {
				return abort(i, err.Error()), fmt.Errorf(
					"replay: step %d (%s): %w", i, step.Raw, err,
				)
			}
			now = now.Add(time.Duration(minutes) * time.Minute)
			location = step.Location

		case domain.StepWait:
			if !step.At.After(now) {
				return abort(i, domain.ReasonBackwardsTime), nil
			}
			now = step.At

		case domain.StepArrive:
			if step.At.Before(now) {
				return abort(i, domain.ReasonStartTooEarly), nil
			}
			now = step.At

		case domain.StepMeet:
			if met[step.Person] {
				return abort(i, domain.ReasonAlreadyMet), nil
			}

			c, ok := constraints[step.Person]
			if !ok {
				if opts.SkipUnknownPersons {
					continue
				}
				return abort(i, domain.ErrUnknownPerson.Error()), fmt.Errorf(
					"replay: step %d (%s): %w: %q",
					i, step.Raw, domain.ErrUnknownPerson, step.Person,
				)
			}

			end := now.Add(time.Duration(c.MeetingMinutes) * time.Minute)
			if location != c.Location || now.Before(c.Start) || end.After(c.End) {
				return abort(i, domain.ReasonInvalidMeeting), nil
			}

			score++
			now = end
			met[step.Person] = true

		default:
			return abort(i, domain.ReasonUnknownStep), nil
		}
	}

	return domain.ReplayResult{Score: score, StepIndex: -1}, nil
}

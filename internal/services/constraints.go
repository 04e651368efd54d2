package services

import (
	"fmt"
	"strings"

	"meeting-eval-service/internal/domain"
)

// BuildConstraints normalizes raw constraint rows into a per-person record
// set. The availability window string is split on the "to" separator and both
// sides are parsed as wall-clock times. A row that cannot be parsed is a
// data-integrity defect and fails the whole build.
func BuildConstraints(rows []domain.ConstraintRow) (map[string]domain.Constraint, error) {
	constraints := make(map[string]domain.Constraint, len(rows))
	for _, row := range rows {
		parts := strings.SplitN(row.Window, "to", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"build constraints: %w: window %q for person %q has no range separator",
				domain.ErrMalformedConstraint, row.Window, row.Person,
			)
		}

		start, err := domain.ParseClock(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf(
				"build constraints: %w: window start for person %q: %v",
				domain.ErrMalformedConstraint, row.Person, err,
			)
		}

		end, err := domain.ParseClock(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf(
				"build constraints: %w: window end for person %q: %v",
				domain.ErrMalformedConstraint, row.Person, err,
			)
		}

		constraints[row.Person] = domain.Constraint{
			Person:         row.Person,
			Location:       row.Location,
			Start:          start,
			End:            end,
			MeetingMinutes: row.Minutes,
		}
	}

	return constraints, nil
}

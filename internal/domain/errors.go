package domain

import "errors"

// Data-integrity errors. These escape to the caller; plan defects never do
// (a defective plan degrades to a lower score via a replay abort instead).
var (
	// A constraint row whose availability window cannot be parsed.
	ErrMalformedConstraint = errors.New("malformed constraint")

	// A travel-time lookup for a location pair absent from the distance matrix.
	// Indicates bad input data, not a plan defect, so it is fatal for the sample.
	ErrMissingDistance = errors.New("missing distance matrix entry")

	// A text-form meet step naming a person with no constraint entry.
	ErrUnknownPerson = errors.New("unknown person in plan")
)

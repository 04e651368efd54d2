package ports

// Contract for looking up travel time between two named locations.
// Lookups are pure reads over fully materialized data, so no context is taken.
type TravelTimeProvider interface {
	// Return travel time in minutes from origin to destination. The mapping is
	// not assumed symmetric. A missing pair is an input-data error, never zero.
	TravelMinutes(origin, destination string) (int, error)
}

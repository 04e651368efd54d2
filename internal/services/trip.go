package services

import (
	"regexp"
	"strconv"
	"strings"

	"meeting-eval-service/internal/domain"
)

const TaskTrip = "trip_planning"

var (
	// A stay span like "Day 1-3".
	visitPattern = regexp.MustCompile(`\d+-\d+`)
	// A flight line like "Day 3: Fly from Venice to Vienna".
	flightPattern = regexp.MustCompile(`.*Day (\d+).*from (\w+) to (\w+)`)
	// The total-trip header, e.g. "…visit European cities for 16 days…".
	totalDaysPattern = regexp.MustCompile(`European cities for (\d+) days`)
)

// CityStay is one leg of a parsed trip: a city and the number of days spent
// there, flight days counting for both adjacent cities.
type CityStay struct {
	City string
	Days int
}

// ParseTripPlan extracts the itinerary from a response as ordered (city, stay)
// pairs. Stays come from day spans, cities and transition days from flight
// lines. Parsing stops once a span reaches the trip's total day count so that
// alternative plans appended after the main one are ignored. A response with
// no recognizable spans or flights parses to nil.
func ParseTripPlan(response string) []CityStay {
	var (
		spans     []string
		flights   [][]string
		totalDays = -1
	)

	for _, line := range strings.Split(response, "\n") {
		if m := totalDaysPattern.FindStringSubmatch(line); m != nil {
			totalDays, _ = strconv.Atoi(m[1])
		}

		if span := visitPattern.FindString(line); span != "" {
			spans = append(spans, span)
			_, endStr, _ := strings.Cut(span, "-")
			if end, err := strconv.Atoi(endStr); err == nil && end == totalDays {
				break
			}
		}

		if m := flightPattern.FindStringSubmatch(line); m != nil {
			flights = append(flights, m[1:])
		}
	}

	if len(spans) == 0 || len(flights) == 0 {
		return nil
	}

	var cities []string
	flightDays := []int{1}
	for _, f := range flights {
		day, _ := strconv.Atoi(f[0])
		flightDays = append(flightDays, day)
		if len(cities) == 0 {
			cities = append(cities, f[1])
		}
		cities = append(cities, f[2])
	}

	_, lastStr, _ := strings.Cut(spans[len(spans)-1], "-")
	lastDay, _ := strconv.Atoi(lastStr)
	flightDays = append(flightDays, lastDay)

	plan := make([]CityStay, 0, len(cities))
	for i, city := range cities {
		plan = append(plan, CityStay{City: city, Days: flightDays[i+1] - flightDays[i] + 1})
	}
	return plan
}

// TripSolved reports whether the parsed response matches the golden itinerary
// exactly: every golden (city, stay) pair in order. The comparison stops at
// the first mismatch, so a partial prefix never counts as solved.
func TripSolved(sample domain.TripSample) bool {
	cities := splitStarList(sample.Cities)
	durations := splitStarList(sample.Durations)
	plan := ParseTripPlan(sample.Response)

	if len(cities) == 0 || len(durations) < len(cities) || len(plan) < len(cities) {
		return false
	}

	for i, city := range cities {
		days, err := strconv.Atoi(durations[i])
		if err != nil {
			return false
		}
		if plan[i].City != city || plan[i].Days != days {
			return false
		}
	}
	return true
}

// TripAccuracy is the exact-match rate across samples.
func TripAccuracy(samples []domain.TripSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	solved := 0
	for _, sample := range samples {
		if TripSolved(sample) {
			solved++
		}
	}
	return float64(solved) / float64(len(samples))
}

func splitStarList(s string) []string {
	parts := strings.Split(s, "**")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

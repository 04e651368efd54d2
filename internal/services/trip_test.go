package services

import (
	"testing"

	"meeting-eval-service/internal/domain"
)

const tripResponse = `You plan to visit European cities for 10 days.
Day 1-3: Stay in Venice.
Day 3: Fly from Venice to Vienna.
Day 3-7: Stay in Vienna.
Day 7: Fly from Vienna to Prague.
Day 7-10: Stay in Prague.
`

func TestParseTripPlan(t *testing.T) {
	plan := ParseTripPlan(tripResponse)

	want := []CityStay{
		{City: "Venice", Days: 3},
		{City: "Vienna", Days: 5},
		{City: "Prague", Days: 4},
	}
	if len(plan) != len(want) {
		t.Fatalf("got %d legs, want %d: %+v", len(plan), len(want), plan)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("leg %d = %+v, want %+v", i, plan[i], want[i])
		}
	}
}

func TestParseTripPlanStopsAtTotalDays(t *testing.T) {
	// An alternative plan appended after the main one must be ignored once a
	// span reaches the trip's total day count.
	response := tripResponse + `
Alternatively:
Day 1-5: Stay in Venice.
Day 5: Fly from Venice to Prague.
Day 5-10: Stay in Prague.
`
	plan := ParseTripPlan(response)
	if len(plan) != 3 {
		t.Fatalf("got %d legs, want 3: %+v", len(plan), plan)
	}
}

func TestParseTripPlanUnparseable(t *testing.T) {
	if plan := ParseTripPlan("I cannot produce an itinerary."); plan != nil {
		t.Fatalf("got %+v, want nil", plan)
	}
}

func TestTripSolved(t *testing.T) {
	sample := domain.TripSample{
		Cities:    "Venice**Vienna**Prague",
		Durations: "3**5**4",
		Response:  tripResponse,
	}
	if !TripSolved(sample) {
		t.Fatalf("expected solved")
	}

	sample.Durations = "3**4**5"
	if TripSolved(sample) {
		t.Fatalf("expected unsolved for mismatched durations")
	}
}

func TestTripSolvedRequiresFullMatch(t *testing.T) {
	// A correct prefix shorter than the golden itinerary never counts.
	sample := domain.TripSample{
		Cities:    "Venice**Vienna**Prague**Berlin",
		Durations: "3**5**4**2",
		Response:  tripResponse,
	}
	if TripSolved(sample) {
		t.Fatalf("expected unsolved for partial plan")
	}
}

func TestTripAccuracy(t *testing.T) {
	samples := []domain.TripSample{
		{Cities: "Venice**Vienna**Prague", Durations: "3**5**4", Response: tripResponse},
		{Cities: "Venice**Vienna**Prague", Durations: "9**9**9", Response: tripResponse},
	}
	if got := TripAccuracy(samples); got != 0.5 {
		t.Fatalf("accuracy = %v, want 0.5", got)
	}
}

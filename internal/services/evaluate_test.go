package services

import (
	"testing"

	"meeting-eval-service/internal/adapters/travel"
	"meeting-eval-service/internal/domain"
)

func twoPersonSample(candidate string) domain.Sample {
	return domain.Sample{
		ID:            "sample-1",
		NumPeople:     2,
		StartLocation: "Russian Hill",
		StartTime:     "9:00AM",
		Constraints: []domain.ConstraintRow{
			{Person: "James", Location: "Marina District", Window: "10:00AM to 12:00PM", Minutes: 30},
			{Person: "Sarah", Location: "Sunset District", Window: "10:00AM to 12:00PM", Minutes: 30},
		},
		DistMatrix: map[string]map[string]int{
			"Russian Hill":    {"Marina District": 30, "Sunset District": 20},
			"Marina District": {"Russian Hill": 30, "Sunset District": 15},
			"Sunset District": {"Russian Hill": 20, "Marina District": 15},
		},
		CandidateText: candidate,
		GoldenPlan: []string{
			"You start at Russian Hill at 9:00AM",
			"You travel to Marina District in 30 minutes and arrive at 9:30AM",
			"You wait until 10:00AM",
			"You meet James for 30 minutes from 10:00AM to 10:30AM",
			"You travel to Sunset District in 15 minutes and arrive at 10:45AM",
			"You meet Sarah for 30 minutes from 10:45AM to 11:15AM",
		},
	}
}

func TestEvaluateSampleEquivalentReorderedPlan(t *testing.T) {
	// The candidate meets the same two people in reversed order via a
	// different route. Scores match, so the sample is correct even though the
	// step sequences differ.
	candidate := "SOLUTION: You start at Russian Hill at 9:00AM. " +
		"You travel to Sunset District in 20 minutes and arrive at 9:20AM. " +
		"You wait until 10:00AM. " +
		"You meet Sarah for 30 minutes from 10:00AM to 10:30AM. " +
		"You travel to Marina District in 15 minutes and arrive at 10:45AM. " +
		"You meet James for 30 minutes from 10:45AM to 11:15AM."

	sample := twoPersonSample(candidate)
	ev, err := EvaluateSample(sample, travel.NewMatrixProvider(sample.DistMatrix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ev.CandidateScore != 2 {
		t.Fatalf("candidate score = %d, want 2", ev.CandidateScore)
	}
	if ev.GoldenScore != 2 {
		t.Fatalf("golden score = %d, want 2", ev.GoldenScore)
	}
	if !ev.Correct {
		t.Fatalf("expected correct for score-equivalent plans")
	}
}

func TestEvaluateSampleDefectiveCandidate(t *testing.T) {
	// The candidate meets James before his window opens, aborting at score 0.
	candidate := "You start at Russian Hill at 9:00AM. " +
		"You travel to Marina District in 30 minutes and arrive at 9:30AM. " +
		"You meet James for 30 minutes from 9:30AM to 10:00AM."

	sample := twoPersonSample(candidate)
	ev, err := EvaluateSample(sample, travel.NewMatrixProvider(sample.DistMatrix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ev.CandidateScore != 0 || ev.GoldenScore != 2 {
		t.Fatalf("scores = %d/%d, want 0/2", ev.CandidateScore, ev.GoldenScore)
	}
	if ev.Correct {
		t.Fatalf("expected incorrect")
	}
}

func TestEvaluateSampleMalformedStartTime(t *testing.T) {
	sample := twoPersonSample("You start at Russian Hill at 9:00AM.")
	sample.StartTime = "nine o'clock"

	_, err := EvaluateSample(sample, travel.NewMatrixProvider(sample.DistMatrix))
	if err == nil {
		t.Fatalf("expected error for malformed start time")
	}
}

func TestSampleKeyStableAndInputSensitive(t *testing.T) {
	a := twoPersonSample("plan A")
	b := twoPersonSample("plan A")
	c := twoPersonSample("plan B")

	if SampleKey(a) != SampleKey(b) {
		t.Fatalf("identical samples produced different keys")
	}
	if SampleKey(a) == SampleKey(c) {
		t.Fatalf("different candidate plans produced the same key")
	}
}

func TestSummaryBuckets(t *testing.T) {
	var s Summary
	s.Add(domain.Evaluation{NumPeople: 2, Correct: true})
	s.Add(domain.Evaluation{NumPeople: 2, Correct: false})
	s.Add(domain.Evaluation{NumPeople: 5, Correct: true})

	if s.Samples != 3 || s.Correct != 2 {
		t.Fatalf("samples/correct = %d/%d, want 3/2", s.Samples, s.Correct)
	}
	if got := s.Buckets[1].Accuracy(); got != 0.5 {
		t.Fatalf("2-people accuracy = %v, want 0.5", got)
	}
	if got := s.Buckets[4].Accuracy(); got != 1.0 {
		t.Fatalf("5-people accuracy = %v, want 1.0", got)
	}
	if got := s.Accuracy(); got != 2.0/3.0 {
		t.Fatalf("overall accuracy = %v", got)
	}
}

package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"meeting-eval-service/internal/domain"
	"meeting-eval-service/internal/ports"
)

const TaskMeeting = "meeting_planning"

// EvaluateSample scores a candidate plan by replaying it through the state
// machine, then replays the golden plan under the identical constraints,
// matrix, and start conditions. The sample is correct iff the two scores are
// equal: plans are compared by outcome, not by step sequence, since different
// itineraries can satisfy the same meetings.
func EvaluateSample(sample domain.Sample, travel ports.TravelTimeProvider) (domain.Evaluation, error) {
	constraints, err := BuildConstraints(sample.Constraints)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("evaluate sample %q: %w", sample.ID, err)
	}

	startTime, err := domain.ParseClock(strings.TrimSpace(sample.StartTime))
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf(
			"evaluate sample %q: %w: start time: %v",
			sample.ID, domain.ErrMalformedConstraint, err,
		)
	}

	candidate := ClassifySteps(ParseSentences(sample.CandidateText))
	golden := ClassifySteps(sample.GoldenPlan)

	candResult, err := Replay(candidate, constraints, sample.StartLocation, startTime, travel, ReplayOptions{})
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("evaluate sample %q: candidate: %w", sample.ID, err)
	}
	logAbort(sample.ID, "candidate", candidate, candResult)

	goldResult, err := Replay(golden, constraints, sample.StartLocation, startTime, travel, ReplayOptions{})
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("evaluate sample %q: golden: %w", sample.ID, err)
	}
	logAbort(sample.ID, "golden", golden, goldResult)

	return domain.Evaluation{
		SampleID:       sample.ID,
		Task:           TaskMeeting,
		NumPeople:      sample.NumPeople,
		CandidateScore: candResult.Score,
		GoldenScore:    goldResult.Score,
		Correct:        candResult.Score == goldResult.Score,
		EvaluatedAt:    time.Now().UTC(),
	}, nil
}

func logAbort(sampleID, plan string, steps []domain.Step, r domain.ReplayResult) {
	if !r.Aborted {
		return
	}
	raw := ""
	if r.StepIndex >= 0 && r.StepIndex < len(steps) {
		raw = steps[r.StepIndex].Raw
	}
	log.Printf(
		"replay aborted sample=%s plan=%s reason=%q step=%q score=%d",
		sampleID, plan, r.Reason, raw, r.Score,
	)
}

// SampleKey fingerprints a sample for score caching. Replays are
// deterministic, so identical inputs always produce identical scores.
func SampleKey(sample domain.Sample) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s\x00", sample.ID, sample.StartLocation, sample.StartTime, sample.CandidateText)
	for _, s := range sample.GoldenPlan {
		fmt.Fprintf(h, "%s\x00", s)
	}
	for _, row := range sample.Constraints {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d\x00", row.Person, row.Location, row.Window, row.Minutes)
	}
	return "eval:" + TaskMeeting + ":" + hex.EncodeToString(h.Sum(nil))
}

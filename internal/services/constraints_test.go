package services

import (
	"errors"
	"testing"

	"meeting-eval-service/internal/domain"
)

func TestBuildConstraints(t *testing.T) {
	constraints, err := BuildConstraints([]domain.ConstraintRow{
		{Person: "James", Location: "Marina District", Window: "9:45AM to 10:45AM", Minutes: 75},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, ok := constraints["James"]
	if !ok {
		t.Fatalf("James missing from constraints")
	}
	if c.Location != "Marina District" {
		t.Fatalf("location = %q", c.Location)
	}
	if got := c.Start.Format(domain.ClockLayout); got != "9:45AM" {
		t.Fatalf("start = %q", got)
	}
	if got := c.End.Format(domain.ClockLayout); got != "10:45AM" {
		t.Fatalf("end = %q", got)
	}
	if c.MeetingMinutes != 75 {
		t.Fatalf("minutes = %d", c.MeetingMinutes)
	}
	if !c.Start.Before(c.End) {
		t.Fatalf("start %v not before end %v", c.Start, c.End)
	}
}

func TestBuildConstraintsMissingSeparator(t *testing.T) {
	_, err := BuildConstraints([]domain.ConstraintRow{
		{Person: "James", Location: "Marina District", Window: "9:45AM until 10:45AM", Minutes: 75},
	})
	if !errors.Is(err, domain.ErrMalformedConstraint) {
		t.Fatalf("expected ErrMalformedConstraint, got %v", err)
	}
}

func TestBuildConstraintsUnparseableTime(t *testing.T) {
	_, err := BuildConstraints([]domain.ConstraintRow{
		{Person: "James", Location: "Marina District", Window: "quarter past nine to 10:45AM", Minutes: 75},
	})
	if !errors.Is(err, domain.ErrMalformedConstraint) {
		t.Fatalf("expected ErrMalformedConstraint, got %v", err)
	}
}

func TestBuildConstraintsAfternoonTimes(t *testing.T) {
	constraints, err := BuildConstraints([]domain.ConstraintRow{
		{Person: "Sarah", Location: "Sunset District", Window: "11:30AM to 1:15PM", Minutes: 45},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := constraints["Sarah"]
	if !c.Start.Before(c.End) {
		t.Fatalf("AM/PM disambiguation failed: start %v, end %v", c.Start, c.End)
	}
}

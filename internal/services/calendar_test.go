package services

import (
	"testing"

	"meeting-eval-service/internal/domain"
)

func TestParseCalendarSlot(t *testing.T) {
	slot := ParseCalendarSlot("Here is the proposed time: Tuesday, 14:30 - 15:30")

	if slot.Day != "Tuesday" {
		t.Fatalf("day = %q, want Tuesday", slot.Day)
	}
	if slot.Start != 14.5 {
		t.Fatalf("start = %v, want 14.5", slot.Start)
	}
	if slot.End != 15.5 {
		t.Fatalf("end = %v, want 15.5", slot.End)
	}
}

func TestParseCalendarSlotTakesFirstMatch(t *testing.T) {
	slot := ParseCalendarSlot("Monday, 9:00 - 9:30 would work, or Friday, 10:00 - 10:30")

	if slot.Day != "Monday" || slot.Start != 9 || slot.End != 9.5 {
		t.Fatalf("got %+v, want first slot Monday 9-9.5", slot)
	}
}

func TestParseCalendarSlotNoMatch(t *testing.T) {
	slot := ParseCalendarSlot("no meeting time can be found")

	if slot.Day != "" || slot.Start != -1 || slot.End != -1 {
		t.Fatalf("got %+v, want empty slot", slot)
	}
}

func TestCalendarSolved(t *testing.T) {
	sample := domain.CalendarSample{
		Response: "SOLUTION: the best slot is Wednesday, 11:30 - 12:00.",
		Golden:   "Wednesday, 11:30 - 12:00",
	}
	if !CalendarSolved(sample) {
		t.Fatalf("expected solved")
	}

	sample.Response = "SOLUTION: the best slot is Wednesday, 12:00 - 12:30."
	if CalendarSolved(sample) {
		t.Fatalf("expected unsolved for different slot")
	}
}

func TestCalendarReportGrouping(t *testing.T) {
	samples := []domain.CalendarSample{
		{NumPeople: 2, NumDays: 1, Response: "Monday, 9:00 - 9:30", Golden: "Monday, 9:00 - 9:30"},
		{NumPeople: 2, NumDays: 1, Response: "Monday, 10:00 - 10:30", Golden: "Monday, 9:00 - 9:30"},
		{NumPeople: 3, NumDays: 2, Response: "Friday, 15:00 - 16:00", Golden: "Friday, 15:00 - 16:00"},
	}

	overall, groups := CalendarReport(samples)

	if overall != 2.0/3.0 {
		t.Fatalf("overall = %v", overall)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].NumPeople != 2 || groups[0].NumDays != 1 || groups[0].SolveRate() != 0.5 {
		t.Fatalf("group 0 = %+v", groups[0])
	}
	if groups[1].NumPeople != 3 || groups[1].SolveRate() != 1.0 {
		t.Fatalf("group 1 = %+v", groups[1])
	}
}

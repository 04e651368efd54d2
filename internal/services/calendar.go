package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"meeting-eval-service/internal/domain"
)

const TaskCalendar = "calendar_scheduling"

// slotPattern matches a proposed meeting slot like "Monday, 9:30 - 10:00".
var slotPattern = regexp.MustCompile(`[A-Za-z]+, [0-9]+:[0-9]+ - [0-9]+:[0-9]+`)

// CalendarSlot is a parsed meeting suggestion. Hours are half-hour-granular
// numbers (9:30 -> 9.5). The zero slot (Start and End of -1) means no slot was
// found in the response.
type CalendarSlot struct {
	Day   string
	Start float64
	End   float64
}

// ParseCalendarSlot extracts the first suggested meeting slot from a response.
func ParseCalendarSlot(response string) CalendarSlot {
	match := slotPattern.FindString(response)
	if match == "" {
		return CalendarSlot{Start: -1, End: -1}
	}

	day, hours, _ := strings.Cut(match, ",")
	startStr, endStr, _ := strings.Cut(strings.TrimSpace(hours), "-")

	return CalendarSlot{
		Day:   strings.TrimSpace(day),
		Start: hourToNum(strings.TrimSpace(startStr)),
		End:   hourToNum(strings.TrimSpace(endStr)),
	}
}

// hourToNum converts "9:30" to 9.5. Only :30 counts as a half hour; the
// datasets use half-hour granularity exclusively.
func hourToNum(hr string) float64 {
	hh, mm, _ := strings.Cut(hr, ":")
	n, err := strconv.ParseFloat(hh, 64)
	if err != nil {
		return -1
	}
	if mm == "30" {
		n += 0.5
	}
	return n
}

// CalendarSolved reports whether the response and the golden solution suggest
// the same slot: same day, same start, same end.
func CalendarSolved(sample domain.CalendarSample) bool {
	r := ParseCalendarSlot(sample.Response)
	s := ParseCalendarSlot(sample.Golden)
	return r.Day == s.Day && r.Start == s.Start && r.End == s.End
}

// CalendarGroup is the solve rate for one (people, days) combination.
type CalendarGroup struct {
	NumPeople int
	NumDays   int
	Samples   int
	Solved    int
}

func (g CalendarGroup) SolveRate() float64 {
	if g.Samples == 0 {
		return 0
	}
	return float64(g.Solved) / float64(g.Samples)
}

// CalendarReport computes the overall solve rate and the per-(people, days)
// breakdown, groups ordered by people then days.
func CalendarReport(samples []domain.CalendarSample) (overall float64, groups []CalendarGroup) {
	solved := 0
	byKey := map[[2]int]*CalendarGroup{}

	for _, sample := range samples {
		key := [2]int{sample.NumPeople, sample.NumDays}
		g, ok := byKey[key]
		if !ok {
			g = &CalendarGroup{NumPeople: sample.NumPeople, NumDays: sample.NumDays}
			byKey[key] = g
		}

		g.Samples++
		if CalendarSolved(sample) {
			g.Solved++
			solved++
		}
	}

	for _, g := range byKey {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].NumPeople != groups[j].NumPeople {
			return groups[i].NumPeople < groups[j].NumPeople
		}
		return groups[i].NumDays < groups[j].NumDays
	})

	if len(samples) > 0 {
		overall = float64(solved) / float64(len(samples))
	}
	return overall, groups
}

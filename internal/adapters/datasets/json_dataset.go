package datasets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"meeting-eval-service/internal/domain"
)

// Loaders for the benchmark dataset files: one JSON object per file, keyed by
// sample id. Shapes follow the published datasets; conversion into domain
// types happens here so the core never touches raw JSON.

// RawMeetingSample is the JSON shape of one meeting-planning record, shared
// by the dataset loader and the HTTP evaluation request body.
type RawMeetingSample struct {
	NumPeople   int                       `json:"num_people"`
	Constraints [][]any                   `json:"constraints"`
	DistMatrix  map[string]map[string]int `json:"dist_matrix"`
	Pred        string                    `json:"pred_5shot_pro"`
	GoldenPlan  []string                  `json:"golden_plan"`
}

// LoadMeetingDataset reads a meeting-planning dataset file. Samples are
// returned sorted by id for stable iteration and reporting.
func LoadMeetingDataset(path string) ([]domain.Sample, error) {
	raw := map[string]RawMeetingSample{}
	if err := loadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("load meeting dataset: %w", err)
	}

	samples := make([]domain.Sample, 0, len(raw))
	for id, rs := range raw {
		sample, err := ConvertMeetingSample(id, rs)
		if err != nil {
			return nil, fmt.Errorf("load meeting dataset: %w", err)
		}
		samples = append(samples, sample)
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].ID < samples[j].ID })
	return samples, nil
}

// ConvertMeetingSample maps a raw record into a domain.Sample. The first
// constraints entry is the start position (location, time); the remaining
// entries are per-person rows (person, location, window, minutes).
func ConvertMeetingSample(id string, rs RawMeetingSample) (domain.Sample, error) {
	if len(rs.Constraints) == 0 {
		return domain.Sample{}, fmt.Errorf("sample %q: constraints must include a start entry", id)
	}

	start := rs.Constraints[0]
	if len(start) < 2 {
		return domain.Sample{}, fmt.Errorf("sample %q: start entry needs location and time", id)
	}
	startLocation, ok1 := start[0].(string)
	startTime, ok2 := start[1].(string)
	if !ok1 || !ok2 {
		return domain.Sample{}, fmt.Errorf("sample %q: start entry fields must be strings", id)
	}

	rows := make([]domain.ConstraintRow, 0, len(rs.Constraints)-1)
	for i, raw := range rs.Constraints[1:] {
		if len(raw) != 4 {
			return domain.Sample{}, fmt.Errorf("sample %q: constraint row %d has %d fields, want 4", id, i+1, len(raw))
		}
		person, ok1 := raw[0].(string)
		location, ok2 := raw[1].(string)
		window, ok3 := raw[2].(string)
		minutes, ok4 := raw[3].(float64)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return domain.Sample{}, fmt.Errorf("sample %q: constraint row %d has wrong field types", id, i+1)
		}

		rows = append(rows, domain.ConstraintRow{
			Person:   person,
			Location: location,
			Window:   window,
			Minutes:  int(minutes),
		})
	}

	return domain.Sample{
		ID:            id,
		NumPeople:     rs.NumPeople,
		StartLocation: startLocation,
		StartTime:     startTime,
		Constraints:   rows,
		DistMatrix:    rs.DistMatrix,
		CandidateText: rs.Pred,
		GoldenPlan:    rs.GoldenPlan,
	}, nil
}

type rawCalendarSample struct {
	NumPeople  int    `json:"num_people"`
	NumDays    int    `json:"num_days"`
	Pred       string `json:"pred_5shot_pro"`
	GoldenPlan string `json:"golden_plan"`
}

// LoadCalendarDataset reads a calendar-scheduling dataset file.
func LoadCalendarDataset(path string) ([]domain.CalendarSample, error) {
	raw := map[string]rawCalendarSample{}
	if err := loadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("load calendar dataset: %w", err)
	}

	samples := make([]domain.CalendarSample, 0, len(raw))
	for id, rs := range raw {
		samples = append(samples, domain.CalendarSample{
			ID:        id,
			NumPeople: rs.NumPeople,
			NumDays:   rs.NumDays,
			Response:  rs.Pred,
			Golden:    rs.GoldenPlan,
		})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].ID < samples[j].ID })
	return samples, nil
}

type rawTripSample struct {
	Cities    string `json:"cities"`
	Durations string `json:"durations"`
	Pred      string `json:"pred_5shot_pro"`
}

// LoadTripDataset reads a trip-planning dataset file.
func LoadTripDataset(path string) ([]domain.TripSample, error) {
	raw := map[string]rawTripSample{}
	if err := loadJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("load trip dataset: %w", err)
	}

	samples := make([]domain.TripSample, 0, len(raw))
	for id, rs := range raw {
		samples = append(samples, domain.TripSample{
			ID:        id,
			Cities:    rs.Cities,
			Durations: rs.Durations,
			Response:  rs.Pred,
		})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].ID < samples[j].ID })
	return samples, nil
}

func loadJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	return nil
}

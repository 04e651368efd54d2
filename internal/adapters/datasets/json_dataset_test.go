package datasets

import (
	"os"
	"path/filepath"
	"testing"
)

const meetingDatasetJSON = `{
  "sample_0": {
    "num_people": 1,
    "constraints": [
      ["Russian Hill", "9:00AM"],
      ["James", "Marina District", "9:45AM to 10:45AM", 30]
    ],
    "dist_matrix": {
      "Russian Hill": {"Marina District": 7},
      "Marina District": {"Russian Hill": 7}
    },
    "pred_5shot_pro": "SOLUTION: You start at Russian Hill at 9:00AM.",
    "golden_plan": ["You start at Russian Hill at 9:00AM"]
  }
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadMeetingDataset(t *testing.T) {
	samples, err := LoadMeetingDataset(writeDataset(t, meetingDatasetJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(samples))
	}

	s := samples[0]
	if s.ID != "sample_0" {
		t.Fatalf("id = %q", s.ID)
	}
	if s.StartLocation != "Russian Hill" || s.StartTime != "9:00AM" {
		t.Fatalf("start = %q at %q", s.StartLocation, s.StartTime)
	}
	if len(s.Constraints) != 1 {
		t.Fatalf("got %d constraint rows, want 1", len(s.Constraints))
	}
	row := s.Constraints[0]
	if row.Person != "James" || row.Location != "Marina District" || row.Minutes != 30 {
		t.Fatalf("row = %+v", row)
	}
	if s.DistMatrix["Russian Hill"]["Marina District"] != 7 {
		t.Fatalf("dist matrix not decoded: %+v", s.DistMatrix)
	}
	if len(s.GoldenPlan) != 1 {
		t.Fatalf("golden plan = %+v", s.GoldenPlan)
	}
}

func TestLoadMeetingDatasetRejectsShortConstraintRow(t *testing.T) {
	bad := `{
  "sample_0": {
    "num_people": 1,
    "constraints": [
      ["Russian Hill", "9:00AM"],
      ["James", "Marina District"]
    ],
    "dist_matrix": {},
    "pred_5shot_pro": "",
    "golden_plan": []
  }
}`
	if _, err := LoadMeetingDataset(writeDataset(t, bad)); err == nil {
		t.Fatalf("expected error for short constraint row")
	}
}

func TestLoadMeetingDatasetMissingFile(t *testing.T) {
	if _, err := LoadMeetingDataset(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadCalendarDataset(t *testing.T) {
	content := `{
  "cal_0": {
    "num_people": 2,
    "num_days": 1,
    "pred_5shot_pro": "Monday, 9:00 - 9:30",
    "golden_plan": "Monday, 9:00 - 9:30"
  }
}`
	samples, err := LoadCalendarDataset(writeDataset(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 || samples[0].NumPeople != 2 || samples[0].NumDays != 1 {
		t.Fatalf("samples = %+v", samples)
	}
}

func TestLoadTripDataset(t *testing.T) {
	content := `{
  "trip_0": {
    "cities": "Venice**Vienna",
    "durations": "3**4",
    "pred_5shot_pro": "some response"
  }
}`
	samples, err := LoadTripDataset(writeDataset(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 || samples[0].Cities != "Venice**Vienna" {
		t.Fatalf("samples = %+v", samples)
	}
}

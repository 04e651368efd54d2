package dto

import (
	"meeting-eval-service/internal/adapters/datasets"
)

type EvaluateRequest struct {
	Samples map[string]datasets.RawMeetingSample `json:"samples"`
}

type SampleResultResponse struct {
	SampleID       string `json:"sample_id"`
	NumPeople      int    `json:"num_people"`
	CandidateScore int    `json:"candidate_score"`
	GoldenScore    int    `json:"golden_score"`
	Correct        bool   `json:"correct"`
	Cached         bool   `json:"cached,omitempty"`
	Error          string `json:"error,omitempty"`
}

type BucketResponse struct {
	NumPeople int     `json:"num_people"`
	Samples   int     `json:"samples"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

type SummaryResponse struct {
	Samples  int              `json:"samples"`
	Correct  int              `json:"correct"`
	Accuracy float64          `json:"accuracy"`
	Buckets  []BucketResponse `json:"buckets"`
}

type EvaluateResponse struct {
	Summary SummaryResponse        `json:"summary"`
	Results []SampleResultResponse `json:"results"`
}

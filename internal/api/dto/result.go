package dto

import "time"

type ResultResponse struct {
	SampleID       string    `json:"sample_id"`
	Task           string    `json:"task"`
	NumPeople      int       `json:"num_people"`
	CandidateScore int       `json:"candidate_score"`
	GoldenScore    int       `json:"golden_score"`
	Correct        bool      `json:"correct"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}

type ListResultsResponse struct {
	Results []ResultResponse `json:"results"`
}

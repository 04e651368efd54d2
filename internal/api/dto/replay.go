package dto

import "meeting-eval-service/internal/services"

// ReplayRequest replays a single plan for debugging model outputs. Exactly one
// of PlanText or Steps must be set: PlanText goes through the free-text
// sentence adapter, Steps through the structured-record adapter.
type ReplayRequest struct {
	StartLocation string                    `json:"start_location"`
	StartTime     string                    `json:"start_time"`
	Constraints   [][]any                   `json:"constraints"`
	DistMatrix    map[string]map[string]int `json:"dist_matrix"`
	PlanText      string                    `json:"plan_text,omitempty"`
	Steps         []services.PlanRecord     `json:"steps,omitempty"`
}

type ReplayResponse struct {
	Score     int    `json:"score"`
	Aborted   bool   `json:"aborted"`
	Reason    string `json:"reason,omitempty"`
	StepIndex int    `json:"step_index"`
}

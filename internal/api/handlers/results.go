package handlers

import (
	"log"
	"net/http"

	"meeting-eval-service/internal/api/dto"
	"meeting-eval-service/internal/ports"
)

// ResultHandler exposes read-only access to persisted evaluations.
type ResultHandler struct {
	Repo ports.ResultRepository
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	results, err := h.Repo.ListResults(r.Context())
	if err != nil {
		log.Printf("list results failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListResultsResponse{
		Results: make([]dto.ResultResponse, 0, len(results)),
	}
	for _, ev := range results {
		res.Results = append(res.Results, dto.ResultResponse{
			SampleID:       ev.SampleID,
			Task:           ev.Task,
			NumPeople:      ev.NumPeople,
			CandidateScore: ev.CandidateScore,
			GoldenScore:    ev.GoldenScore,
			Correct:        ev.Correct,
			EvaluatedAt:    ev.EvaluatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

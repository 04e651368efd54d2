package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"meeting-eval-service/internal/adapters/travel"
	"meeting-eval-service/internal/api/dto"
	"meeting-eval-service/internal/domain"
	"meeting-eval-service/internal/services"
)

// ReplayHandler exposes a single plan replay for inspecting how a model
// output scores: the response includes the abort point and reason.
type ReplayHandler struct{}

func (h *ReplayHandler) Replay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReplayRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.StartLocation == "" || req.StartTime == "" {
		writeError(w, r, http.StatusBadRequest, "start_location and start_time are required")
		return
	}
	if (req.PlanText == "") == (len(req.Steps) == 0) {
		writeError(w, r, http.StatusBadRequest, "exactly one of plan_text or steps must be set")
		return
	}

	rows, err := constraintRows(req.Constraints)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	constraints, err := services.BuildConstraints(rows)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	startTime, err := domain.ParseClock(strings.TrimSpace(req.StartTime))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_time: "+err.Error())
		return
	}

	var steps []domain.Step
	var opts services.ReplayOptions
	if req.PlanText != "" {
		steps = services.ClassifySteps(services.ParseSentences(req.PlanText))
	} else {
		steps = services.ParseStructuredPlan(req.Steps)
		opts.SkipUnknownPersons = true
	}

	provider := travel.NewMatrixProvider(req.DistMatrix)
	result, err := services.Replay(steps, constraints, req.StartLocation, startTime, provider, opts)
	if err != nil {
		// Missing matrix entries and unconstrained people are input-data
		// defects, not plan defects.
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReplayResponse{
		Score:     result.Score,
		Aborted:   result.Aborted,
		Reason:    result.Reason,
		StepIndex: result.StepIndex,
	})
}

// constraintRows coerces the dataset's mixed-type constraint rows. Unlike a
// full sample, a replay request carries no start entry in constraints.
func constraintRows(raw [][]any) ([]domain.ConstraintRow, error) {
	rows := make([]domain.ConstraintRow, 0, len(raw))
	for _, rc := range raw {
		if len(rc) != 4 {
			return nil, errors.New("constraints rows must have 4 fields (person, location, window, minutes)")
		}
		person, ok1 := rc[0].(string)
		location, ok2 := rc[1].(string)
		window, ok3 := rc[2].(string)
		minutes, ok4 := rc[3].(float64)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, errors.New("constraints rows must be [string, string, string, number]")
		}

		rows = append(rows, domain.ConstraintRow{
			Person:   person,
			Location: location,
			Window:   window,
			Minutes:  int(minutes),
		})
	}
	return rows, nil
}

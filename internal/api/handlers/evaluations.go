package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"meeting-eval-service/internal/adapters/datasets"
	"meeting-eval-service/internal/adapters/travel"
	"meeting-eval-service/internal/api/dto"
	"meeting-eval-service/internal/domain"
	"meeting-eval-service/internal/platform/obs"
	"meeting-eval-service/internal/ports"
	"meeting-eval-service/internal/services"
)

// EvaluationHandler scores batches of meeting-planning samples.
// Repo and Cache are optional: without a repo results are not persisted,
// without a cache every sample is replayed fresh.
type EvaluationHandler struct {
	Repo    ports.ResultRepository
	Cache   ports.ScoreCache
	Workers int
}

type sampleOutcome struct {
	id     string
	eval   domain.Evaluation
	cached bool
	err    error
}

// Evaluate runs every sample of the request through the replay comparator.
// Samples are independent, so they fan out across a bounded worker pool; a
// sample whose input data is defective (malformed constraint, missing distance
// entry) is reported as a per-sample error without failing the batch.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EvaluateRequest

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

	if len(req.Samples) == 0 {
		writeError(w, r, http.StatusBadRequest, "samples is required")
		return
	}

	var err error
	defer obs.Time("evaluate batch")(&err)

	outcomes := h.evaluateAll(r.Context(), req.Samples)

	var summary services.Summary
	results := make([]dto.SampleResultResponse, 0, len(outcomes))
	persist := make([]domain.Evaluation, 0, len(outcomes))

	for _, out := range outcomes {
		if out.err != nil {
			results = append(results, dto.SampleResultResponse{
				SampleID: out.id,
				Error:    out.err.Error(),
			})
			continue
		}

		summary.Add(out.eval)
		persist = append(persist, out.eval)
		results = append(results, dto.SampleResultResponse{
			SampleID:       out.id,
			NumPeople:      out.eval.NumPeople,
			CandidateScore: out.eval.CandidateScore,
			GoldenScore:    out.eval.GoldenScore,
			Correct:        out.eval.Correct,
			Cached:         out.cached,
		})
	}

	if h.Repo != nil && len(persist) > 0 {
		if err = h.Repo.SaveResults(r.Context(), persist); err != nil {
			log.Printf("save results failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, r, http.StatusOK, dto.EvaluateResponse{
		Summary: summaryResponse(summary),
		Results: results,
	})
}

func (h *EvaluationHandler) evaluateAll(ctx context.Context, raw map[string]datasets.RawMeetingSample) []sampleOutcome {
	workers := h.Workers
	if workers < 1 {
		workers = 4
	}

	sem := make(chan struct{}, workers)
	outcomeCh := make(chan sampleOutcome, len(raw))
	var wg sync.WaitGroup

	for id, rs := range raw {
		wg.Add(1)
		go func(id string, rs datasets.RawMeetingSample) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			outcomeCh <- h.evaluateOne(ctx, id, rs)
		}(id, rs)
	}

	wg.Wait()
	close(outcomeCh)

	outcomes := make([]sampleOutcome, 0, len(raw))
	for out := range outcomeCh {
		outcomes = append(outcomes, out)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].id < outcomes[j].id })
	return outcomes
}

func (h *EvaluationHandler) evaluateOne(ctx context.Context, id string, rs datasets.RawMeetingSample) sampleOutcome {
	sample, err := datasets.ConvertMeetingSample(id, rs)
	if err != nil {
		return sampleOutcome{id: id, err: err}
	}

	key := ""
	if h.Cache != nil {
		key = services.SampleKey(sample)
		scores, ok, err := h.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("score cache get failed: sample=%s err=%v", id, err)
		} else if ok {
			return sampleOutcome{
				id:     id,
				cached: true,
				eval: domain.Evaluation{
					SampleID:       id,
					Task:           services.TaskMeeting,
					NumPeople:      sample.NumPeople,
					CandidateScore: scores.CandidateScore,
					GoldenScore:    scores.GoldenScore,
					Correct:        scores.CandidateScore == scores.GoldenScore,
					EvaluatedAt:    time.Now().UTC(),
				},
			}
		}
	}

	eval, err := services.EvaluateSample(sample, travel.NewMatrixProvider(sample.DistMatrix))
	if err != nil {
		return sampleOutcome{id: id, err: err}
	}

	if h.Cache != nil {
		pair := domain.ScorePair{CandidateScore: eval.CandidateScore, GoldenScore: eval.GoldenScore}
		if err := h.Cache.Put(ctx, key, pair); err != nil {
			log.Printf("score cache put failed: sample=%s err=%v", id, err)
		}
	}

	return sampleOutcome{id: id, eval: eval}
}

func summaryResponse(s services.Summary) dto.SummaryResponse {
	res := dto.SummaryResponse{
		Samples:  s.Samples,
		Correct:  s.Correct,
		Accuracy: s.Accuracy(),
	}
	for i, b := range s.Buckets {
		if b.Samples == 0 {
			continue
		}
		res.Buckets = append(res.Buckets, dto.BucketResponse{
			NumPeople: i + 1,
			Samples:   b.Samples,
			Correct:   b.Correct,
			Accuracy:  b.Accuracy(),
		})
	}
	return res
}

package api

import (
	"net/http"

	"meeting-eval-service/internal/api/handlers"
	"meeting-eval-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). Repo and cache may be nil for a stateless deployment.
func NewRouter(repo ports.ResultRepository, cache ports.ScoreCache, workers int) http.Handler {
	mux := http.NewServeMux()

	evalHandler := &handlers.EvaluationHandler{
		Repo:    repo,
		Cache:   cache,
		Workers: workers,
	}
	replayHandler := &handlers.ReplayHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/evaluations", evalHandler.Evaluate)
	mux.HandleFunc("/replays", replayHandler.Replay)

	if repo != nil {
		resultHandler := &handlers.ResultHandler{Repo: repo}
		mux.HandleFunc("/results", resultHandler.List)
	}

	return loggingMiddleware(mux)
}

package handlers

import (
	"net/http"

	"meeting-eval-service/internal/services"
)

// Health reports liveness and the benchmark tasks this server scores.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"tasks":  []string{services.TaskMeeting, services.TaskCalendar, services.TaskTrip},
	})
}

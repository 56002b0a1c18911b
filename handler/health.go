package handler

import (
	"net/http"
	"time"

	"github.com/gopostr/gopos/infra/response"
)

// Health returns a liveness handler. The payload carries enough to tell
// a misconfigured deployment from a healthy one at a glance.
func Health(version string, openSearchEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "healthy", map[string]any{
			"status":             "ok",
			"timestamp":          time.Now().Format(time.RFC3339),
			"version":            version,
			"opensearch_enabled": openSearchEnabled,
		})
	}
}

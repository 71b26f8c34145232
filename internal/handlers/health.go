package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler reports liveness. With a dependency check configured it
// also reports whether that dependency answers.
type HealthHandler struct {
	check func(ctx context.Context) error
}

func NewHealthHandler(check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{check: check}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.check == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.check(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"redis":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

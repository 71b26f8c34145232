package middleware

import (
	"encoding/json"
	"net/http"

	"corpassist-backend/internal/models"
)

// TooManyRequests is the envelope returned once a client exceeds its limit.
func TooManyRequests() models.StandardResponse {
	return models.StandardResponse{
		StatusCode:    http.StatusTooManyRequests,
		StatusMessage: http.StatusText(http.StatusTooManyRequests),
		Data:          "Too many requests. Please try again later.",
	}
}

func writeJSON(w http.ResponseWriter, resp models.StandardResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	json.NewEncoder(w).Encode(resp)
}

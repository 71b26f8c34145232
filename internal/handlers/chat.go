package handlers

import (
	"errors"
	"io"
	"net/http"

	"corpassist-backend/internal/models"
	"corpassist-backend/internal/services"
)

type ChatHandler struct {
	chat         *services.ChatService
	maxBodyBytes int64
}

func NewChatHandler(chat *services.ChatService, maxBodyBytes int64) *ChatHandler {
	return &ChatHandler{
		chat:         chat,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		message := "could not read request body"
		if errors.As(err, &tooLarge) {
			message = "request body too large"
		}
		resp := models.ValidationFailure(map[string]string{"body": message}, requestID)
		writeJSON(w, resp.StatusCode, resp)
		return
	}

	resp := h.chat.Process(r.Context(), body, requestID)
	writeJSON(w, resp.StatusCode, resp)
}

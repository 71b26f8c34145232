package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"corpassist-backend/internal/models"
)

// Responder produces the reply text for a validated request.
type Responder interface {
	Respond(ctx context.Context, req models.ChatRequest) (string, error)
}

// ChatService runs one chat exchange: decode, validate, respond, wrap.
// It is shared by the HTTP and WebSocket transports.
type ChatService struct {
	responder Responder
}

func NewChatService(responder Responder) *ChatService {
	return &ChatService{responder: responder}
}

// Process turns a raw request body into the response envelope. The
// envelope's StatusCode doubles as the HTTP status.
func (s *ChatService) Process(ctx context.Context, body []byte, requestID string) models.StandardResponse {
	req, err := DecodeChatRequest(body)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return models.ValidationFailure(vErr.Fields, requestID)
		}
		return models.InternalError(err)
	}

	reply, err := s.respond(ctx, req)
	if err != nil {
		log.Printf("chat: request %s failed: %v", requestID, err)
		return models.InternalError(err)
	}

	return models.ChatSuccess(reply)
}

func (s *ChatService) respond(ctx context.Context, req models.ChatRequest) (reply string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	return s.responder.Respond(ctx, req)
}

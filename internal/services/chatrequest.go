package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"corpassist-backend/internal/models"
)

// Pointer fields let missing and null values be told apart from empty ones.
type messagePayload struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

type chatRequestPayload struct {
	Prompt  *string           `json:"prompt"`
	History *[]messagePayload `json:"history"`
}

// DecodeChatRequest parses and validates a chat request body. Any failure is
// returned as a *ValidationError.
func DecodeChatRequest(body []byte) (models.ChatRequest, error) {
	var payload chatRequestPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.ChatRequest{}, decodeError(err)
	}

	fields := make(map[string]string)
	if payload.Prompt == nil {
		fields["prompt"] = "field required"
	}
	if payload.History == nil {
		fields["history"] = "field required"
	} else {
		for i, msg := range *payload.History {
			if msg.Role == nil {
				fields[fmt.Sprintf("history.%d.role", i)] = "field required"
			}
			if msg.Content == nil {
				fields[fmt.Sprintf("history.%d.content", i)] = "field required"
			}
		}
	}
	if len(fields) > 0 {
		return models.ChatRequest{}, &ValidationError{Fields: fields}
	}

	req := models.ChatRequest{
		Prompt:  *payload.Prompt,
		History: make([]models.Message, 0, len(*payload.History)),
	}
	for _, msg := range *payload.History {
		req.History = append(req.History, models.Message{Role: *msg.Role, Content: *msg.Content})
	}

	return req, nil
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return fieldError("body", "must be a JSON object")
		}
		return fieldError(typeErr.Field, expectedType(typeErr.Type))
	}

	return fieldError("body", "invalid JSON")
}

func expectedType(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Slice:
		return "must be an array"
	case reflect.Struct:
		return "must be an object"
	default:
		return "has an invalid type"
	}
}

package models

const (
	StatusMessageChatOK        = "Chat response generated successfully"
	StatusMessageInternalError = "Internal Server Error"
	StatusMessageValidation    = "Validation Error"
)

// StandardResponse is the envelope used for every chat outcome.
type StandardResponse struct {
	StatusCode    int         `json:"status_code"`
	StatusMessage string      `json:"status_message"`
	Data          interface{} `json:"data"`
}

// ValidationDetail is the data of a 422 envelope.
type ValidationDetail struct {
	Fields    map[string]string `json:"fields"`
	RequestID string            `json:"request_id,omitempty"`
}

func ChatSuccess(reply string) StandardResponse {
	return StandardResponse{
		StatusCode:    200,
		StatusMessage: StatusMessageChatOK,
		Data:          ChatReply{Reply: reply},
	}
}

// InternalError wraps a processing failure; data is the error text.
func InternalError(err error) StandardResponse {
	return StandardResponse{
		StatusCode:    500,
		StatusMessage: StatusMessageInternalError,
		Data:          err.Error(),
	}
}

func ValidationFailure(fields map[string]string, requestID string) StandardResponse {
	return StandardResponse{
		StatusCode:    422,
		StatusMessage: StatusMessageValidation,
		Data:          ValidationDetail{Fields: fields, RequestID: requestID},
	}
}

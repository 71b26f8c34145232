package services

// ValidationError reports request fields that failed schema checks, keyed by
// dotted path (e.g. "history.0.role").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

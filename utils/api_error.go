package utils

import "net/http"

// APIError is a controllable failure carrying the HTTP status to map it to.
// Anything that is not an *APIError surfaces as a 500 with a generic
// message in production.
type APIError struct {
	Status  int
	Message string
	Details any
}

func (e *APIError) Error() string { return e.Message }

func NewValidationError(message string, details any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Details: details}
}

func NewAuthError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFoundError covers both "absent" and "exists but owned by someone
// else" — callers must not be able to tell the two apart.
func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

package server

import (
	"fmt"
	"net/http"
)

// User-facing messages mandated by the scoring API contract.
const (
	msgMissingFields = "Resume (HTML) and job description are required"
	msgInternalError = "Failed to calculate ATS Score"
)

// apiMessage is the error envelope for the scoring API.
type apiMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrMalformedRequest indicates the request body could not be decoded
type ErrMalformedRequest struct {
	Err error
}

func (e *ErrMalformedRequest) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *ErrMalformedRequest) Unwrap() error { return e.Err }

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Err error
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

func (e *ErrValidation) Unwrap() error { return e.Err }

// ErrScoring indicates the scoring pipeline failed
type ErrScoring struct {
	Err error
}

func (e *ErrScoring) Error() string {
	return fmt.Sprintf("scoring failed: %v", e.Err)
}

func (e *ErrScoring) Unwrap() error { return e.Err }

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMalformedRequest, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps an error to the stable client-facing contract message.
// Internal detail never leaks to the response body; it goes to the log.
func userMessage(err error) string {
	switch err.(type) {
	case *ErrMalformedRequest, *ErrValidation:
		return msgMissingFields
	default:
		return msgInternalError
	}
}

// errorResponse writes the error envelope with the status and message
// derived from the error's type.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), apiMessage{Success: false, Message: userMessage(err)})
}

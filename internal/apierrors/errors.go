package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeClientRequired    = "CLIENT_REQUIRED"
	CodeUnknownClient     = "UNKNOWN_CLIENT"
	CodeInvalidStep       = "INVALID_STEP"
	CodeImageNotFound     = "IMAGE_NOT_FOUND"
	CodeUnsupportedImage  = "UNSUPPORTED_IMAGE"
	CodeImageTooLarge     = "IMAGE_TOO_LARGE"
	CodeTrackerError      = "TRACKER_ERROR"
	CodeStoreError        = "STORE_ERROR"
	CodeConnectivityError = "CONNECTIVITY_ERROR"
	CodeAuthExpired       = "AUTH_EXPIRED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// APIError is an error that is safe to expose to API clients.
// Internal carries the underlying cause for logging only.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
	Redirect   string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// BadRequest returns a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized returns a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// AuthExpired returns a 401 error telling the client where to log in again
func AuthExpired(redirect string) *APIError {
	return &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeAuthExpired,
		Message:    "Your session has expired. Please log in again.",
		Redirect:   redirect,
	}
}

// NotFound returns a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict returns a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// RequestEntityTooLarge returns a 413 error
func RequestEntityTooLarge(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: code, Message: message}
}

// BadGateway returns a 502 error for failures of an upstream service
func BadGateway(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Internal: internal}
}

// ServiceUnavailable returns a 503 error
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internal}
}

// InternalError returns a sanitized 500 error - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internal,
	}
}

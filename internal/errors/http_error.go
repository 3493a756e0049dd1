package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for common error kinds. Validation and policy rejections map to
// 400, auth failures to 401, inactive accounts and forbidden roles to 403,
// missing rows to 404, uniqueness violations to 409, unclassified storage
// failures to 500.
var (
	ErrValidation   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrPolicy       = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrForbidden    = func(msg string) *HTTPError { return NewHTTPError(http.StatusForbidden, msg) }
	ErrNotFound     = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	ErrConflict     = func(msg string) *HTTPError { return NewHTTPError(http.StatusConflict, msg) }
	ErrUpload       = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrStorage      = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, msg) }
)

// StatusOf returns the HTTP status for err, defaulting to 500 for anything
// that is not an *HTTPError.
func StatusOf(err error) int {
	if he, ok := err.(*HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}

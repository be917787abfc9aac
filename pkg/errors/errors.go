package errors

import "errors"

// Codes shared between the domain and the HTTP layer.
const (
	CodeInvalidInput        = "invalid_input"
	CodeUpstreamStatus      = "upstream_status"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeMalformedResponse   = "malformed_response"
)

// AppError carries a machine readable code next to the failure.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode reports whether any AppError in the chain carries code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost AppError, or "" when there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

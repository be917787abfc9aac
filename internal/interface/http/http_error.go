package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/r-G7D/color-outfit-app/pkg/errors"
)

// Every failure is a 500 with a fixed message; detail is only ever logged.
const (
	msgUpstreamFailed   = "ChatGPT request failed"
	msgServerError      = "Server error"
	codeInternalError   = "internal_error"
	codeInvalidRequest  = "invalid_request"
	codeAnalysisFailure = "analysis_failed"
)

// HTTPError captures what the error middleware needs to render a failure.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromDomainError maps domain codes onto the two client visible failures.
func fromDomainError(err error) *HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusInternalServerError, codeInvalidRequest, msgServerError, err)
	case apperrors.CodeUpstreamStatus:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeUpstreamStatus, msgUpstreamFailed, err)
	case "":
		return NewHTTPError(http.StatusInternalServerError, codeInternalError, msgServerError, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, codeAnalysisFailure, msgServerError, err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(http.StatusInternalServerError, codeInternalError, msgServerError, err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

package arbor

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig   = errors.New("bad config")
	ErrMissingData = errors.New("missing data")
	ErrNotFound    = errors.New("not found")
	ErrNotValid    = errors.New("invalid")
)

// An HTTPError is the one failure shape the dispatch pipeline speaks natively.
// Every other failure reaching the pipeline is coerced into an HTTPError
// before a response is formed.
type HTTPError struct {
	Code    int    `json:"statusCode"`
	Message string `json:"message"`
	Body    any    `json:"body,omitempty"`
}

// NewHTTPError constructs an *HTTPError from a status code and a message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode implements [StatusCoder].
func (e *HTTPError) StatusCode() int { return e.Code }

// A StatusCoder is an error electing its own HTTP status code.
//
// Collaborators raising untyped failures adapt them into a StatusCoder once
// at their own boundary; the pipeline's normalizer checks for the interface
// exactly once and otherwise treats the failure as internal.
type StatusCoder interface {
	error
	StatusCode() int
}

// A Bodier is an error carrying a structured payload for the error response
// body, alongside its message.
type Bodier interface {
	ErrorBody() any
}

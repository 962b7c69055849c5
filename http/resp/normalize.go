package resp

import (
	"errors"
	"net/http"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/logger"
)

// An ErrorBody is the uniform payload delivered for every failed request:
// the original request, the failure's message, and its structured body or
// null. Clients can treat error and success branches uniformly except for
// status code and body shape.
type ErrorBody struct {
	Request *req.Request `json:"request"`
	Message string       `json:"message"`
	Body    any          `json:"body"`
}

// Normalize coerces any failure into an *arbor.HTTPError.
//
// An *arbor.HTTPError passes through unchanged. An error electing its own
// status code through [arbor.StatusCoder] is wrapped preserving that code,
// its message, and any [arbor.Bodier] body. Anything else is an unexpected
// internal failure: it is logged through l for operability and wrapped as a
// 500 carrying its message.
func Normalize(err error, l logger.Logger) *arbor.HTTPError {
	var httpErr *arbor.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var coder arbor.StatusCoder
	if errors.As(err, &coder) {
		wrapped := arbor.NewHTTPError(coder.StatusCode(), coder.Error())
		var bodier arbor.Bodier
		if errors.As(err, &bodier) {
			wrapped.Body = bodier.ErrorBody()
		}

		return wrapped
	}

	if l != nil {
		l.Error("unexpected failure normalized to 500", &logger.LogContext{Error: err})
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	return arbor.NewHTTPError(http.StatusInternalServerError, msg)
}

// Error forms the uniform failure delivery for r: the normalized error's
// status code, the fixed base header set, and an ErrorBody.
func Error(r *req.Request, httpErr *arbor.HTTPError) (int, map[string]string, ErrorBody) {
	body := ErrorBody{
		Request: r,
		Message: httpErr.Message,
		Body:    httpErr.Body,
	}

	return httpErr.Code, BaseHeaders(), body
}

package dispatch

import (
	"context"
	"net/http"

	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/resp"
	"github.com/arborhq/arbor/http/tree"
)

// An AuthedHandler produces a result value for an authenticated user. It is
// the shape application code most often wants to write: no accessor, no
// Response plumbing.
type AuthedHandler[U any] func(ctx context.Context, user U, r *req.Request) (any, error)

// Authenticate adapts h into a [tree.Handler] that resolves the user through
// the accessor before running h, wrapping h's return value as a 200 Response
// with empty headers.
//
// Authenticate performs no error handling of its own: a failing accessor or
// a failing h propagates untouched, to be caught and normalized by the
// pipeline. An accessor failure means h never runs.
func Authenticate[U any](h AuthedHandler[U]) tree.Handler[U] {
	return func(ctx context.Context, r *req.Request, user tree.UserFn[U]) (*resp.Response, error) {
		u, err := user(ctx)
		if err != nil {
			return nil, err
		}

		out, err := h(ctx, u, r)
		if err != nil {
			return nil, err
		}

		return &resp.Response{
			Code:    http.StatusOK,
			Headers: map[string]string{},
			Body:    out,
		}, nil
	}
}

package dispatch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/resp"
	"github.com/arborhq/arbor/http/tree"
	"github.com/arborhq/arbor/logger"
)

// A Pipeline dispatches requests against one service tree. The tree is
// read-only shared state, so a single Pipeline serves any number of
// concurrent requests.
type Pipeline[U any] struct {
	root *tree.Node[U]
	l    logger.Logger
}

// A PipelineOptFn is a functional option configuring a Pipeline when constructing a new one.
type PipelineOptFn[U any] func(*Pipeline[U])

// WithLogger sets the logger the Pipeline emits through.
func WithLogger[U any](l logger.Logger) PipelineOptFn[U] {
	return func(p *Pipeline[U]) {
		p.l = l
	}
}

// New constructs a *Pipeline dispatching against root.
func New[U any](root *tree.Node[U], opts ...PipelineOptFn[U]) *Pipeline[U] {
	p := &Pipeline[U]{root: root}
	for _, opt := range opts {
		opt(p)
	}

	if p.l == nil {
		p.l = logger.New()
	}

	return p
}

// HandleRequest runs one request through the pipeline and delivers the
// outcome to cb. It has no return value; all results flow through cb, which
// is invoked exactly once, whatever path the request takes.
//
// user is the lazy authentication accessor passed through to the resolved
// handler; it is never invoked by the pipeline itself.
func (p *Pipeline[U]) HandleRequest(ctx context.Context, user tree.UserFn[U], r *req.Request, cb resp.Callback) {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, arbor.RequestIDKey, id)

	delivered := false
	deliver := func(code int, headers map[string]string, body any) {
		if delivered {
			return
		}

		delivered = true
		cb(code, headers, body)
	}

	fail := func(r *req.Request, err error) {
		httpErr := resp.Normalize(err, p.l)
		p.l.Debug(fmt.Sprintf("request %s failed: %s", id, httpErr.Message), &logger.LogContext{Request: r, Error: httpErr})
		deliver(resp.Error(r, httpErr))
	}

	// A panicking handler must not leak past the pipeline nor starve the
	// callback.
	defer func() {
		if rec := recover(); rec != nil {
			fail(r, fmt.Errorf("panic: %v", rec))
		}
	}()

	path, query := req.SplitQuery(r.Path)
	if r.Query == nil && query != nil {
		r = r.WithQuery(query)
	}

	node, err := tree.Resolve(p.root, req.ReadParts(path))
	if err != nil {
		fail(r, err)
		return
	}

	h, ok := node.Methods[r.Method]
	if !ok {
		// Preflight requests succeed uniformly across the whole tree,
		// no per-node configuration.
		if r.Method == http.MethodOptions {
			deliver(http.StatusOK, resp.BaseHeaders(), nil)
			return
		}

		deliver(http.StatusNotFound, resp.BaseHeaders(), nil)
		return
	}

	res, err := h(ctx, r, user)
	if err != nil {
		fail(r, err)
		return
	}

	p.l.Debug(fmt.Sprintf("request %s handled", id), &logger.LogContext{Request: r})

	if res == nil {
		deliver(http.StatusOK, resp.BaseHeaders(), nil)
		return
	}

	// Handler successes always deliver as 200; Response.Code is ignored
	// under the current handler contract.
	deliver(http.StatusOK, resp.OverlayHeaders(res.Headers), res.Body)
}

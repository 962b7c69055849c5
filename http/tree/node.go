package tree

import (
	"context"

	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/resp"
)

// A UserFn is the lazy authentication accessor supplied to every handler
// invocation. Handlers that need no authentication never call it and so
// incur no authentication cost or failure.
type UserFn[U any] func(ctx context.Context) (U, error)

// A Handler produces the Response for one HTTP verb at one Node.
type Handler[U any] func(ctx context.Context, r *req.Request, user UserFn[U]) (*resp.Response, error)

// A Node is one point in the routing tree. Methods maps verb names to
// handlers; Children maps single path segments to child nodes. Every Node is
// exclusively owned by its parent's Children mapping - no sharing, no
// cycles - and no request mutates one.
type Node[U any] struct {
	Methods  map[string]Handler[U]
	Children map[string]*Node[U]
}

// Leaf constructs a Node exposing verb handlers and no children.
func Leaf[U any](methods map[string]Handler[U]) *Node[U] {
	return &Node[U]{Methods: methods, Children: map[string]*Node[U]{}}
}

// Branch constructs a Node exposing children and no handlers of its own.
func Branch[U any](children map[string]*Node[U]) *Node[U] {
	return &Node[U]{Methods: map[string]Handler[U]{}, Children: children}
}

// Routes constructs a Node exposing both verb handlers and children.
func Routes[U any](methods map[string]Handler[U], children map[string]*Node[U]) *Node[U] {
	return &Node[U]{Methods: methods, Children: children}
}

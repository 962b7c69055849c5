package tree

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/resp"
)

func stubHandler(_ context.Context, _ *req.Request, _ UserFn[string]) (*resp.Response, error) {
	return &resp.Response{}, nil
}

func testTree() (*Node[string], *Node[string], *Node[string]) {
	grandchild := Leaf(map[string]Handler[string]{http.MethodGet: stubHandler})
	child := Routes(map[string]Handler[string]{http.MethodPost: stubHandler}, map[string]*Node[string]{
		"deep": grandchild,
	})
	root := Branch(map[string]*Node[string]{
		"users":    child,
		"accounts": Leaf(map[string]Handler[string]{http.MethodGet: stubHandler}),
	})

	return root, child, grandchild
}

func TestResolve(t *testing.T) {
	root, child, grandchild := testTree()

	tcs := []struct {
		name     string
		segments []string
		expected *Node[string]
	}{
		{"Zero-Segments-Is-Root", []string{}, root},
		{"One-Level", []string{"users"}, child},
		{"Two-Levels", []string{"users", "deep"}, grandchild},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Resolve(root, tc.segments)

			require.Nil(t, err)
			require.Same(t, tc.expected, actual)
		})
	}
}

func TestResolveMissingSegment(t *testing.T) {
	root, _, _ := testTree()

	_, err := Resolve(root, []string{"nope"})

	var httpErr *arbor.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
	require.Contains(t, httpErr.Message, `"nope"`)

	// the valid sibling names are echoed as a diagnostic aid
	require.Contains(t, httpErr.Message, "accounts, users")
}

func TestResolveMissingSegmentMidDescent(t *testing.T) {
	root, _, _ := testTree()

	_, err := Resolve(root, []string{"users", "shallow"})

	var httpErr *arbor.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
	require.Contains(t, httpErr.Message, `"shallow"`)
	require.Contains(t, httpErr.Message, "deep")
}

func TestResolveMalformedNode(t *testing.T) {
	// built by hand to sidestep the constructors, which always set Children
	malformed := &Node[string]{Methods: map[string]Handler[string]{}}

	_, err := Resolve(malformed, []string{"anything"})

	var httpErr *arbor.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
	require.Equal(t, "Illegal node parent. Missing children.", httpErr.Message)
}

func TestResolveNeverMutates(t *testing.T) {
	root, _, _ := testTree()

	_, _ = Resolve(root, []string{"ghost"})
	_, _ = Resolve(root, []string{"users", "ghost"})

	require.Len(t, root.Children, 2)
	require.Len(t, root.Children["users"].Children, 1)
}

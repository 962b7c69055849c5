package tree

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/arborhq/arbor"
)

// Resolve returns the node reached by consuming segments one at a time from
// n, each step looking up the next segment in the current node's Children.
// A zero-length segment sequence resolves to n itself.
//
// Resolution is deterministic single-path descent: no backtracking, no
// partial matches, O(len(segments)) lookups. It never mutates the tree.
//
// Both failure modes surface as an *arbor.HTTPError with status 404: a node
// missing its Children mapping entirely (a malformed node; the constructors
// in this package never build one), or a segment absent from the current
// node's Children. The latter message echoes the missing segment and the
// valid sibling names as a diagnostic aid; path structure is not secret.
func Resolve[U any](n *Node[U], segments []string) (*Node[U], error) {
	if len(segments) == 0 {
		return n, nil
	}

	if n == nil || n.Children == nil {
		return nil, arbor.NewHTTPError(http.StatusNotFound, "Illegal node parent. Missing children.")
	}

	child, ok := n.Children[segments[0]]
	if !ok {
		msg := fmt.Sprintf("No child %q. Valid children are: %s.", segments[0], childNames(n))
		return nil, arbor.NewHTTPError(http.StatusNotFound, msg)
	}

	return Resolve(child, segments[1:])
}

// childNames lists a node's child segment names, sorted for stable messages.
func childNames[U any](n *Node[U]) string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

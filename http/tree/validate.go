package tree

import (
	"fmt"
	"net/http"

	"github.com/arborhq/arbor"
)

var knownVerbs = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// Validate walks the tree rooted at n, confirming every handler is keyed by
// a recognized verb and that no node appears twice - a shared or cyclic
// node breaks the exclusive-ownership invariant the lock-free traversal
// relies on. Call it once after assembly; resolution itself never validates.
func Validate[U any](n *Node[U]) error {
	return validate(n, "", map[*Node[U]]bool{})
}

func validate[U any](n *Node[U], at string, seen map[*Node[U]]bool) error {
	if n == nil {
		return fmt.Errorf("%w: nil node at %q", arbor.ErrNotValid, at)
	}

	if seen[n] {
		return fmt.Errorf("%w: node at %q is owned elsewhere in the tree", arbor.ErrNotValid, at)
	}
	seen[n] = true

	for verb := range n.Methods {
		if _, ok := knownVerbs[verb]; !ok {
			return fmt.Errorf("%w: unrecognized verb %q at %q", arbor.ErrNotValid, verb, at)
		}
	}

	for segment, child := range n.Children {
		if err := validate(child, at+"/"+segment, seen); err != nil {
			return err
		}
	}

	return nil
}

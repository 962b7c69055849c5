/*
Package tree holds the service-node tree an arbor application routes over.

A tree is plain data: each [Node] maps HTTP verbs to handlers and path
segments to children. It is assembled once at process start and is read-only
for the lifetime of the process, so concurrent in-flight requests traverse
it without locking. The type parameter U is the authenticated-user type the
whole tree agrees on; it threads through every [Handler] in the tree rather
than being special-cased per node.

	root := tree.Branch(map[string]*tree.Node[User]{
		"users": tree.Leaf(map[string]tree.Handler[User]{
			http.MethodGet: listUsers,
		}),
	})
*/
package tree

/*
Package arbor holds types and values shared across the arbor packages.

Arbor is a minimal, tree-shaped request router and dispatch pipeline for
building HTTP-style APIs without a framework. An application assembles a
static tree of service nodes ([http/tree]), each exposing verb handlers and
named children. At request time the dispatch pipeline ([http/dispatch]) walks
the tree along the request path, resolves a single node, selects the verb
handler, runs it - optionally after a lazy authentication step - and funnels
both success and failure into a single response-callback contract.

The root package carries the error taxonomy the pipeline speaks natively
([HTTPError] and friends), context keys, and environment helpers.
*/
package arbor

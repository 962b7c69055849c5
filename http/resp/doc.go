// Package resp holds the response shape the dispatch pipeline produces, the
// fixed header set stamped on every response, and the normalizer coercing
// arbitrary failures into the uniform error payload.
package resp

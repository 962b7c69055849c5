// Package req holds the transport-independent request shape and the helpers
// for pulling structured data out of it: raw path and query parsing, the
// fixed request-data policy, and struct decoding with validation.
package req

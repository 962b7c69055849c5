/*
Package dispatch ties the arbor pieces into the request-handling pipeline:
parse, resolve, method lookup, invoke, respond-or-error.

A [Pipeline] owns the root of a service tree and a logger. Its central
correctness contract is that the response callback runs exactly once per
request on every path: handler success, expected miss, OPTIONS
short-circuit, resolution failure, handler failure, even a panicking
handler. Failures of any origin funnel through resp.Normalize before
reaching the callback; no failure escapes the pipeline.
*/
package dispatch

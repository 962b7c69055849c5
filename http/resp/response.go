package resp

// A Response is what a verb handler produces. One is built fresh per request
// and never reused.
type Response struct {
	// Code is the HTTP status code. Note the pipeline delivers handler
	// successes as 200 regardless of Code; see the dispatch package.
	Code int

	// Headers are overlaid onto the fixed base header set, winning on
	// key collision.
	Headers map[string]string

	// Body is any serializable value; nil is permitted.
	Body any
}

// A Callback receives the final status code, headers, and body for one
// request. The dispatch pipeline guarantees it is invoked exactly once per
// request, on every path: success, expected miss, or failure.
type Callback func(code int, headers map[string]string, body any)

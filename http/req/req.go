package req

// A Request is the transport-independent form of an incoming HTTP-style
// request. A transport adapter builds one from whatever it receives - a
// net/http request, a function-as-a-service event - and hands it to the
// dispatch pipeline. A Request is immutable once received; nothing in the
// pipeline writes to it.
type Request struct {
	// Method is the HTTP verb, e.g. GET.
	Method string

	// Path is the slash-delimited request path. It may still carry a
	// "?query" suffix; the pipeline splits it off with SplitQuery.
	Path string

	// Headers maps a header name to its values. Case handling is the
	// transport's responsibility.
	Headers map[string][]string

	// Query is the pre-parsed query mapping, when the transport already
	// parsed one. Nil means the query has not been parsed yet.
	Query map[string]string

	// Body is the raw request body, "" when absent.
	Body string
}

// Header returns the first value set for the named header, or "".
func (r *Request) Header(name string) string {
	vals := r.Headers[name]
	if len(vals) == 0 {
		return ""
	}

	return vals[0]
}

// WithQuery returns a shallow copy of r carrying the provided query mapping.
// The original Request is untouched.
func (r *Request) WithQuery(query map[string]string) *Request {
	cp := *r
	cp.Query = query
	return &cp
}

package resp

const (
	allowOrigin  = "*"
	allowHeaders = "Authorization, Content-Type, Auth-Provider"
	allowMethods = "OPTIONS, GET, POST, PUT"
	contentType  = "application/json"
)

// BaseHeaders returns the fixed header set applied to every response,
// success or error, and always present in OPTIONS responses. A fresh map is
// returned each call so callers can overlay handler headers onto it.
func BaseHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  allowOrigin,
		"Access-Control-Allow-Headers": allowHeaders,
		"Access-Control-Allow-Methods": allowMethods,
		"Content-Type":                 contentType,
	}
}

// OverlayHeaders merges overlay onto the fixed base header set. Overlay
// entries win on key collision.
func OverlayHeaders(overlay map[string]string) map[string]string {
	headers := BaseHeaders()
	for k, v := range overlay {
		headers[k] = v
	}

	return headers
}

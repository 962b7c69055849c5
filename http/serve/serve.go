package serve

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/http/dispatch"
	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/tree"
)

// An AccessorFn builds the lazy authentication accessor for one request,
// e.g. auth.Service.Accessor.
type AccessorFn[U any] func(*req.Request) tree.UserFn[U]

// Handler adapts p into an http.Handler. Each inbound *http.Request is
// rebuilt as a transport-independent req.Request, the client IP is promoted
// onto the context under arbor.IpAddrKey, and the pipeline's response
// callback writes status, headers, and the JSON-encoded body back out.
func Handler[U any](p *dispatch.Pipeline[U], accessor AccessorFn[U]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
		}

		areq := &req.Request{
			Method:  r.Method,
			Path:    r.URL.RequestURI(),
			Headers: r.Header,
			Body:    string(body),
		}

		ctx := context.WithValue(r.Context(), arbor.IpAddrKey, GetIPAddress(r.Header))

		p.HandleRequest(ctx, accessor(areq), areq, func(code int, headers map[string]string, body any) {
			for k, v := range headers {
				w.Header().Set(k, v)
			}

			w.WriteHeader(code)
			if body == nil {
				return
			}

			_ = json.NewEncoder(w).Encode(body)
		})
	})
}

// Mux mounts the adapted pipeline at the root of a gorilla mux, wrapping it
// in Apache-style request logging and the provided adapters. Every path and
// method funnels to the pipeline; routing decisions belong to the service
// tree, not the mux.
func Mux[U any](p *dispatch.Pipeline[U], accessor AccessorFn[U], adapters ...Adapter) *mux.Router {
	r := mux.NewRouter()
	h := Chain(Handler(p, accessor), adapters...)
	r.PathPrefix("/").Handler(handlers.CombinedLoggingHandler(os.Stdout, h))

	return r
}

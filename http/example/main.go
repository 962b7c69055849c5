/*
main is a toy example use of the arbor stack, focusing on the basics of:

(1) assembling a service tree out of tree constructors;
(2) reading effective request data with req.Data;
(3) guarding a handler with dispatch.Authenticate and a JWT accessor;
(4) mounting the pipeline on net/http with serve.Mux.

Run it, then:

	curl localhost:8080/ping
	curl -X POST localhost:8080/echo -d '{"hi":"there"}'
	curl localhost:8080/me -H "Authorization: Bearer $TOKEN"
*/
package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/auth"
	"github.com/arborhq/arbor/http/dispatch"
	"github.com/arborhq/arbor/http/req"
	"github.com/arborhq/arbor/http/resp"
	"github.com/arborhq/arbor/http/serve"
	"github.com/arborhq/arbor/http/tree"
	"github.com/arborhq/arbor/logger"
)

func main() {
	// a missing .env is fine, the defaults below stand in
	_ = godotenv.Load()

	l := logger.New(logger.WithLevel(logger.NewLogLevel(arbor.EnvVarOrString("LOG_LEVEL", "INFO"))))

	svc, err := auth.NewService(
		arbor.EnvVarOrString("JWT_KEY", "local-dev-key"),
		arbor.EnvVarOrString("GOOGLE_CLIENT_ID", "local-dev-client"),
		arbor.EnvVarOrString("GOOGLE_CLIENT_SECRET", "local-dev-secret"),
	)
	if err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	root := tree.Branch(map[string]*tree.Node[jwt.Claims]{
		"ping": tree.Leaf(map[string]tree.Handler[jwt.Claims]{
			http.MethodGet: ping,
		}),
		"echo": tree.Leaf(map[string]tree.Handler[jwt.Claims]{
			http.MethodPost: echo,
		}),
		"me": tree.Leaf(map[string]tree.Handler[jwt.Claims]{
			http.MethodGet: dispatch.Authenticate[jwt.Claims](me),
		}),
	})

	if err := tree.Validate(root); err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}

	p := dispatch.New(root, dispatch.WithLogger[jwt.Claims](l))

	accessor := func(r *req.Request) tree.UserFn[jwt.Claims] {
		return svc.Accessor(r, jwt.MapClaims{})
	}

	m := serve.Mux(p, accessor, serve.RateLimit(serve.NewVisitors()))

	addr := ":" + strconv.Itoa(arbor.EnvVarOrInt("PORT", 8080))
	l.Info("listening on "+addr, nil)
	if err := http.ListenAndServe(addr, m); err != nil {
		l.Fatal(err.Error(), nil)
	}
}

func ping(_ context.Context, _ *req.Request, _ tree.UserFn[jwt.Claims]) (*resp.Response, error) {
	return &resp.Response{Body: map[string]any{"pong": true}}, nil
}

// echo writes back whatever effective data the request carried, absent or not.
func echo(_ context.Context, r *req.Request, _ tree.UserFn[jwt.Claims]) (*resp.Response, error) {
	data, err := req.Data(r)
	if err != nil {
		return nil, err
	}

	return &resp.Response{Body: data}, nil
}

func me(_ context.Context, user jwt.Claims, _ *req.Request) (any, error) {
	return user, nil
}

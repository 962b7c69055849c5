package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/arborhq/arbor/http/req"
)

// AuthenticateJWT decodes jwt claims from the provided request, reading the
// token off the "Authorization: Bearer" header or, failing that, the "jwt"
// query param. If neither is set, AuthenticateJWT returns ErrNotValid.
// Please note that the consuming party needs to pass appToken as a pointer
// so that it can be hydrated by ParseWithClaims.
func (s *Service) AuthenticateJWT(r *req.Request, appToken jwt.Claims) (jwt.Claims, error) {
	reqToken := bearerToken(r)
	if reqToken == "" {
		return nil, fmt.Errorf("no jwt set on request: %w", ErrNotValid)
	}

	token, err := s.parser.ParseWithClaims(reqToken, appToken, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpected, err)
	}

	return token.Claims, nil
}

// Accessor builds the lazy authentication accessor for one request,
// matching the shape the dispatch pipeline passes to handlers. The token is
// not verified until a handler first invokes the accessor, so handlers
// needing no user skip verification entirely.
func (s *Service) Accessor(r *req.Request, appToken jwt.Claims) func(context.Context) (jwt.Claims, error) {
	return func(context.Context) (jwt.Claims, error) {
		return s.AuthenticateJWT(r, appToken)
	}
}

// bearerToken pulls the raw token off r.
func bearerToken(r *req.Request) string {
	header := r.Header("Authorization")
	if tok, found := strings.CutPrefix(header, "Bearer "); found && tok != "" {
		return tok
	}

	return r.Query["jwt"]
}

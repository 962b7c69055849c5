package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/arborhq/arbor/http/req"
)

const testKey = "0123456789abcdef"

func signedToken(t *testing.T, key, sub string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(key))
	require.Nil(t, err)

	return signed
}

func testService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(testKey, "client", "secret")
	require.Nil(t, err)

	return svc
}

func TestNewService(t *testing.T) {
	_, err := NewService("", "client", "secret")
	require.ErrorIs(t, err, ErrNotValid)

	_, err = NewService(testKey, "client", "secret")
	require.Nil(t, err)
}

func TestAuthenticateJWT(t *testing.T) {
	svc := testService(t)

	t.Run("Bearer-Header", func(t *testing.T) {
		r := &req.Request{Headers: map[string][]string{
			"Authorization": {"Bearer " + signedToken(t, testKey, "mel")},
		}}

		claims, err := svc.AuthenticateJWT(r, jwt.MapClaims{})
		require.Nil(t, err)
		require.Equal(t, "mel", claims.(jwt.MapClaims)["sub"])
	})

	t.Run("Query-Fallback", func(t *testing.T) {
		r := &req.Request{Query: map[string]string{"jwt": signedToken(t, testKey, "mel")}}

		claims, err := svc.AuthenticateJWT(r, jwt.MapClaims{})
		require.Nil(t, err)
		require.Equal(t, "mel", claims.(jwt.MapClaims)["sub"])
	})

	t.Run("No-Token", func(t *testing.T) {
		_, err := svc.AuthenticateJWT(&req.Request{}, jwt.MapClaims{})
		require.ErrorIs(t, err, ErrNotValid)
	})

	t.Run("Wrong-Key", func(t *testing.T) {
		r := &req.Request{Headers: map[string][]string{
			"Authorization": {"Bearer " + signedToken(t, "another-key-here", "mel")},
		}}

		_, err := svc.AuthenticateJWT(r, jwt.MapClaims{})
		require.ErrorIs(t, err, ErrUnexpected)
	})
}

func TestAccessor(t *testing.T) {
	svc := testService(t)

	// building the accessor must not touch the token; only invoking it does
	accessor := svc.Accessor(&req.Request{}, jwt.MapClaims{})

	_, err := accessor(context.Background())
	require.ErrorIs(t, err, ErrNotValid)

	r := &req.Request{Headers: map[string][]string{
		"Authorization": {"Bearer " + signedToken(t, testKey, "mel")},
	}}

	claims, err := svc.Accessor(r, jwt.MapClaims{})(context.Background())
	require.Nil(t, err)
	require.Equal(t, "mel", claims.(jwt.MapClaims)["sub"])
}

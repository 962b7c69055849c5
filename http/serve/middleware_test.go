package serve

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("first"), tag("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRateLimit(t *testing.T) {
	visitors := NewVisitors()

	// drain the visitor's burst allowance up front
	v := visitors.Fetch("93.184.216.34")
	for v.Limiter.Allow() {
	}

	h := RateLimit(visitors)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "93.184.216.34")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitAllows(t *testing.T) {
	visitors := NewVisitors()
	visitors.val["93.184.216.34"] = Visitor{Limiter: rate.NewLimiter(rate.Inf, 1)}

	h := RateLimit(visitors)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "93.184.216.34")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		headers  http.Header
		expected string
	}{
		{
			name:     "Forwarded-For",
			headers:  http.Header{"X-Forwarded-For": []string{"93.184.216.34"}},
			expected: "93.184.216.34",
		},
		{
			name:     "Skips-Private",
			headers:  http.Header{"X-Forwarded-For": []string{"93.184.216.34, 10.0.0.8"}},
			expected: "93.184.216.34",
		},
		{
			name:     "Real-Ip-Fallback",
			headers:  http.Header{"X-Real-Ip": []string{"93.184.216.34"}},
			expected: "93.184.216.34",
		},
		{
			name:     "Nothing-Set",
			headers:  http.Header{},
			expected: "0.0.0.0",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, GetIPAddress(tc.headers))
		})
	}
}

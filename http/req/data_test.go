package req

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborhq/arbor"
)

func TestData(t *testing.T) {
	tcs := []struct {
		name   string
		r      *Request
		assert func(*testing.T, any, error)
	}{
		{
			name: "Get-Query",
			r:    &Request{Method: http.MethodGet, Query: map[string]string{"a": "1"}},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Equal(t, map[string]string{"a": "1"}, data)
			},
		},
		{
			name: "Delete-Query",
			r:    &Request{Method: http.MethodDelete, Query: map[string]string{"id": "8"}},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Equal(t, map[string]string{"id": "8"}, data)
			},
		},
		{
			name: "Get-No-Query",
			r:    &Request{Method: http.MethodGet},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Nil(t, data)
			},
		},
		{
			name: "Post-Body",
			r:    &Request{Method: http.MethodPost, Body: `{"hi":"there"}`},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Equal(t, map[string]any{"hi": "there"}, data)
			},
		},
		{
			name: "Post-Empty-Body-Is-Absent",
			r:    &Request{Method: http.MethodPost},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Nil(t, data)
			},
		},
		{
			name: "Put-Empty-Body-Is-Absent",
			r:    &Request{Method: http.MethodPut},
			assert: func(t *testing.T, data any, err error) {
				require.Nil(t, err)
				require.Nil(t, data)
			},
		},
		{
			name: "Post-Malformed-Body",
			r:    &Request{Method: http.MethodPost, Body: `{"hi":`},
			assert: func(t *testing.T, data any, err error) {
				require.ErrorIs(t, err, arbor.ErrNotValid)
				require.Nil(t, data)
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Data(tc.r)
			tc.assert(t, data, err)
		})
	}
}

func TestRequestWithQuery(t *testing.T) {
	orig := &Request{Method: http.MethodGet, Path: "/a?x=1"}
	cp := orig.WithQuery(map[string]string{"x": "1"})

	require.Nil(t, orig.Query)
	require.Equal(t, map[string]string{"x": "1"}, cp.Query)
	require.Equal(t, orig.Path, cp.Path)
}

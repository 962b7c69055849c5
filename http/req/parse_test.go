package req

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitQuery(t *testing.T) {
	tcs := []struct {
		name     string
		raw      string
		path     string
		query    map[string]string
	}{
		{
			name:  "No-Query",
			raw:   "/foo/bar",
			path:  "/foo/bar",
			query: nil,
		},
		{
			name:  "With-Query",
			raw:   "/foo/bar?x=1",
			path:  "/foo/bar",
			query: map[string]string{"x": "1"},
		},
		{
			name:  "Many-Pairs",
			raw:   "/things?a=1&b=2&c=8",
			path:  "/things",
			query: map[string]string{"a": "1", "b": "2", "c": "8"},
		},
		{
			name:  "Empty-Suffix",
			raw:   "/foo?",
			path:  "/foo",
			query: map[string]string{},
		},
		{
			name:  "Raw-Values-Kept",
			raw:   "/foo?x=a%20b",
			path:  "/foo",
			query: map[string]string{"x": "a%20b"},
		},
		{
			name:  "Empty-Raw",
			raw:   "",
			path:  "",
			query: nil,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path, query := SplitQuery(tc.raw)

			require.Equal(t, tc.path, path)
			require.Equal(t, tc.query, query)
		})
	}
}

func TestReadParts(t *testing.T) {
	tcs := []struct {
		name     string
		path     string
		expected []string
	}{
		{"Rooted", "/a/b/c", []string{"a", "b", "c"}},
		{"Unrooted", "a/b", []string{"a", "b"}},
		{"Single", "/users", []string{"users"}},
		{"Empty", "", []string{}},
		{"Separator-Only", "/", []string{}},
		{"Trailing-Slash-Kept", "/a/", []string{"a", ""}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ReadParts(tc.path))
		})
	}
}

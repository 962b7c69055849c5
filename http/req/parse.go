package req

import "strings"

// SplitQuery splits a raw path into its path and query halves.
//
// When raw carries no "?", the query mapping is nil. Otherwise the suffix is
// parsed as "&"-separated "key=value" pairs into a flat mapping; an empty
// suffix yields an empty, non-nil mapping. Values are kept raw - no
// unescaping, no repeated-key handling. That lack of normalization is
// deliberate and load-bearing; callers relying on exact round-tripping of
// raw values depend on it.
func SplitQuery(raw string) (string, map[string]string) {
	path, rawQuery, found := strings.Cut(raw, "?")
	if !found {
		return path, nil
	}

	query := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		k, v, _ := strings.Cut(pair, "=")
		query[k] = v
	}

	return path, query
}

// ReadParts breaks a path into its ordered segments, dropping one leading
// separator. An empty path yields no segments. Like SplitQuery, ReadParts
// performs no normalization: it does not decode segments nor collapse
// trailing slashes.
func ReadParts(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return []string{}
	}

	return strings.Split(path, "/")
}

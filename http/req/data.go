package req

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arborhq/arbor"
)

// Data returns the effective request data for r.
//
// For read-style verbs (GET, DELETE) that is the parsed query mapping. For
// every other verb it is the JSON-decoded body when the body is non-empty,
// and nil - "absent" - otherwise. A POST or PUT with an empty body sees
// absent data, never an error. This policy is fixed, not configurable.
func Data(r *Request) (any, error) {
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		if r.Query == nil {
			return nil, nil
		}
		return r.Query, nil
	}

	if r.Body == "" {
		return nil, nil
	}

	var data any
	if err := json.Unmarshal([]byte(r.Body), &data); err != nil {
		return nil, fmt.Errorf("%w: failed decoding request body: %s", arbor.ErrNotValid, err)
	}

	return data, nil
}

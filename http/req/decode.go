package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/arborhq/arbor"
)

// A Parser decodes the effective data of a Request into caller-provided
// structs, running validation rules set by "validate" struct tags.
type Parser struct {
	queryParamDecoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// ParseBody decodes the JSON body of r into a pointer to a struct.
// If successful, ParseBody runs validation against the contents,
// returning an error wrapping [arbor.ErrNotValid] if the data fails
// validation rules.
func (p *Parser) ParseBody(r *Request, structPtr any) error {
	if r.Body == "" {
		return fmt.Errorf("arbor/http/req: %w: request has no body", arbor.ErrMissingData)
	}

	var ourFault *json.InvalidUnmarshalError
	err := json.Unmarshal([]byte(r.Body), structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("arbor/http/req: %w: ParseBody called with non-pointer: %s", arbor.ErrBadConfig, err)
	}

	if err != nil {
		return fmt.Errorf("arbor/http/req: %w: failed decoding request body: %s", arbor.ErrNotValid, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("arbor/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQuery decodes the query mapping of r into a pointer to a struct.
// If successful, ParseQuery runs validation against the contents,
// returning an error wrapping [arbor.ErrNotValid] if the data fails
// validation rules.
func (p *Parser) ParseQuery(r *Request, structPtr any) error {
	params := make(url.Values, len(r.Query))
	for k, v := range r.Query {
		params.Set(k, v)
	}

	if err := p.queryParamDecoder.Decode(structPtr, params); err != nil {
		return fmt.Errorf("arbor/http/req: %w: failed decoding request query params: %s", arbor.ErrNotValid, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("arbor/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

func newQueryParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// fieldName pulls the client-facing name for a struct field out of its
// "json" or "schema" tag, preferring "json".
func fieldName(jsonTag, schemaTag string) string {
	name := strings.SplitN(jsonTag, ",", 2)[0]
	if name == "" || name == "-" {
		name = strings.SplitN(schemaTag, ",", 2)[0]
	}

	if name == "-" {
		name = ""
	}

	return name
}

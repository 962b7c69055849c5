// Package client is the outbound HTTP collaborator arbor handlers use to
// call downstream services. The dispatch core never depends on its
// internals; failures it returns are adapted into the pipeline's error shape
// by the handler raising them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arborhq/arbor"
	"github.com/arborhq/arbor/http/resp"
)

const defaultTimeout = 30 * time.Second

// A Client exchanges requests with downstream services, collecting each
// response body as UTF-8 text and decoding it as JSON when non-empty.
type Client struct {
	hc *http.Client
}

// A ClientOptFn is a functional option configuring a Client when constructing a new one.
type ClientOptFn func(*Client)

// WithHTTPClient sets the *http.Client the Client exchanges through.
func WithHTTPClient(hc *http.Client) ClientOptFn {
	return func(c *Client) {
		c.hc = hc
	}
}

// New constructs a *Client. The default transport applies a 30s timeout.
func New(opts ...ClientOptFn) *Client {
	c := new(Client)
	for _, opt := range opts {
		opt(c)
	}

	if c.hc == nil {
		c.hc = &http.Client{Timeout: defaultTimeout}
	}

	return c
}

// Do issues the request and resolves with the downstream status code, empty
// headers, and the JSON-decoded body, or nil when the downstream body was
// empty. A non-nil body is JSON-encoded onto the request. Transport
// failures and undecodable bodies return an error.
//
// Should the transport fail to supply a status code, it defaults to 500.
func (c *Client) Do(ctx context.Context, method, url string, headers map[string]string, body any) (*resp.Response, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("arbor/http/client: %w: cannot encode request body: %s", arbor.ErrNotValid, err)
		}

		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, buf)
	if err != nil {
		return nil, fmt.Errorf("arbor/http/client: %w: %s", arbor.ErrBadConfig, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbor/http/client: exchange failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("arbor/http/client: failed reading response body: %w", err)
	}

	var parsed any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("arbor/http/client: %w: cannot decode response body: %s", arbor.ErrNotValid, err)
		}
	}

	code := res.StatusCode
	if code == 0 {
		code = http.StatusInternalServerError
	}

	return &resp.Response{
		Code:    code,
		Headers: map[string]string{},
		Body:    parsed,
	}, nil
}

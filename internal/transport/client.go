package transport

import (
	"context"
	"net/http"

	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// Client provides HTTP client functionality with authentication.
// No timeout is imposed beyond the transport default; callers own the
// context.
type Client struct {
	http *http.Client
}

// New creates a new transport client.
func New() *Client {
	return &Client{http: &http.Client{}}
}

// NewWithHTTPClient creates a transport client around an existing
// http.Client, mainly for tests.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Get performs an authenticated GET request.
func (c *Client) Get(ctx context.Context, url string, auth Authenticator, apiKey string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapAPI("", url, 0, err)
	}

	if auth != nil && apiKey != "" {
		auth.Apply(req, apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}

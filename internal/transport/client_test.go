package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mepankajsingh/modelmap/pkg/errors"
)

func TestAuthenticators(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	(&BearerAuth{}).Apply(req, "key")
	assert.Equal(t, "Bearer key", req.Header.Get("Authorization"))

	(&HeaderAuth{Header: APIKeyHeader}).Apply(req, "key")
	assert.Equal(t, "key", req.Header.Get("x-api-key"))

	fresh := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	(&NoAuth{}).Apply(fresh, "key")
	assert.Empty(t, fresh.Header.Get("Authorization"))
}

func TestGetAppliesAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	resp, err := New().Get(context.Background(), server.URL, &BearerAuth{}, "secret")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, DecodeResponse(resp, &body))
	assert.Equal(t, true, body["ok"])
}

func TestDecodeResponse(t *testing.T) {
	t.Run("non-200 becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer server.Close()

		resp, err := New().Get(context.Background(), server.URL, &NoAuth{}, "")
		require.NoError(t, err)

		var body any
		err = DecodeResponse(resp, &body)
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("malformed body becomes ParseError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		resp, err := New().Get(context.Background(), server.URL, &NoAuth{}, "")
		require.NoError(t, err)

		var body any
		err = DecodeResponse(resp, &body)

		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

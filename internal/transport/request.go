package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mepankajsingh/modelmap/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure. The
// response body is always drained and closed.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapAPI("", "", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

// Drain discards and closes a response body so the connection can be
// reused.
func Drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

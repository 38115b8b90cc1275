package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// utf8BOM is the byte-order mark some endpoints prepend to UTF-8 bodies.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// GetJSON performs an authenticated GET against the given URL and decodes the
// JSON response into out. The bearer token is sent in the Authorization
// header; an empty token sends no header. Bodies are BOM-tolerant: a leading
// UTF-8 byte-order mark is stripped before decoding.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, bearerToken string, out interface{}) error {
	body, err := Get(ctx, client, rawURL, bearerToken)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}

	return nil
}

// Get performs an authenticated GET and returns the response body with any
// leading UTF-8 BOM removed. Non-2xx responses are returned as errors.
func Get(ctx context.Context, client *http.Client, rawURL string, bearerToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request to %s returned status %d", rawURL, resp.StatusCode)
	}

	return bytes.TrimPrefix(body, utf8BOM), nil
}

// Package netx contains raw HTTP helpers that sit outside the API client.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetch downloads url with GET and returns the body together with the
// response Content-Type. Non-200 responses are reported as errors that
// include the status and the (possibly truncated) body.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > 512 {
			body = body[:512]
		}
		return nil, "", fmt.Errorf("fetch failed: %s; body: %s", resp.Status, string(body))
	}

	return body, resp.Header.Get("Content-Type"), nil
}

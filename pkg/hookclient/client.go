// Package hookclient posts JSON payloads to a user-configured webhook URL.
package hookclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"billing-automation/pkg/vendorhttp"
)

// Client posts to a single URL.
type Client struct {
	url  string
	http *vendorhttp.Client
}

func NewClient(url string, httpClient *http.Client) *Client {
	return &Client{
		url:  url,
		http: vendorhttp.New(httpClient, vendorhttp.DefaultSettings("webhook")),
	}
}

// Post sends payload as JSON. A 2xx answer with an empty body yields an empty
// map; a non-empty body must be JSON.
func (c *Client) Post(ctx context.Context, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("webhook returned non-JSON response: %w", err)
	}
	return out, nil
}

// Package pushcut triggers PushCut notifications.
package pushcut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"billing-automation/pkg/vendorhttp"
)

const DefaultBaseURL = "https://api.pushcut.io/v1"

// Notification is the optional body sent with a trigger.
type Notification struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Input string `json:"input,omitempty"`
	// DelaySeconds is rendered as PushCut's delay string, e.g. "90s".
	DelaySeconds int64 `json:"-"`
}

type triggerBody struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Input string `json:"input,omitempty"`
	Delay string `json:"delay,omitempty"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *vendorhttp.Client
}

func NewClient(apiKey string, httpClient *http.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    vendorhttp.New(httpClient, vendorhttp.DefaultSettings("pushcut")),
	}
}

// SetBaseURL overrides the default PushCut API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// Trigger fires the named notification.
func (c *Client) Trigger(ctx context.Context, name string, n Notification) error {
	b := triggerBody{Title: n.Title, Text: n.Text, Input: n.Input}
	if n.DelaySeconds > 0 {
		b.Delay = fmt.Sprintf("%ds", n.DelaySeconds)
	}
	body, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	endpoint := c.baseURL + "/notifications/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pushcut request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pushcut API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

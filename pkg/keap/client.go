package keap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"billing-automation/pkg/vendorhttp"
)

// Client is the Keap REST client.
type Client struct {
	baseURL string
	tokens  TokenProvider
	http    *vendorhttp.Client
}

// NewClient creates a Keap client authenticating through tokens.
func NewClient(tokens TokenProvider, httpClient *http.Client) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		tokens:  tokens,
		http:    vendorhttp.New(httpClient, vendorhttp.DefaultSettings("keap")),
	}
}

// SetBaseURL overrides the default Keap API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// ListCampaigns fetches all campaigns including their goals.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	q := url.Values{}
	q.Set("optional_properties", "goals")

	raw, err := c.do(ctx, http.MethodGet, campaignsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var list campaignList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return list.Campaigns, nil
}

// TriggerGoal achieves a campaign goal for a contact and returns Keap's response body.
func (c *Client) TriggerGoal(ctx context.Context, req TriggerGoalRequest) (map[string]any, error) {
	if req.Integration == "" {
		req.Integration = DefaultIntegration
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal goal request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, goalsPath, body)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		// Keap sometimes answers with a bare array.
		var arr []any
		if json.Unmarshal(raw, &arr) == nil {
			return map[string]any{"results": arr}, nil
		}
		return nil, fmt.Errorf("failed to decode goal response: %w", err)
	}
	return out, nil
}

// ProfileValid reports whether token is accepted by the account profile endpoint.
// It never refreshes.
func (c *Client) ProfileValid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, ErrNoAccessToken
	}
	resp, err := c.send(ctx, http.MethodGet, profilePath, nil, token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *Client) BreakerState() string {
	return c.http.State()
}

// do sends an authenticated request. A 401 triggers one token refresh and
// exactly one retry; a second 401 is ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	token := c.tokens.AccessToken(ctx)
	if token == "" {
		return nil, ErrNoAccessToken
	}

	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokens.CanRefresh() {
		resp.Body.Close()

		st, rerr := c.tokens.Refresh(ctx)
		if rerr != nil {
			return nil, fmt.Errorf("%w: refresh after 401 failed: %v", ErrUnauthorized, rerr)
		}
		resp, err = c.send(ctx, method, path, body, st.AccessToken)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Keap response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("failed to build Keap request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, context.DeadlineExceeded
		}
		return nil, fmt.Errorf("Keap request failed: %w", err)
	}
	return resp, nil
}

package airtable

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

// Client writes records into one Airtable table.
type Client struct {
	apiKey  string
	baseID  string
	table   string
	baseURL string
	http    *vendorhttp.Client
}

// NewClient creates a client for table in base baseID.
func NewClient(apiKey, baseID, table string, httpClient *http.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseID:  baseID,
		table:   table,
		baseURL: DefaultBaseURL,
		http:    vendorhttp.New(httpClient, vendorhttp.DefaultSettings("airtable")),
	}
}

// SetBaseURL overrides the default Airtable API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// CreateRecord inserts one row and returns it as stored by Airtable.
func (c *Client) CreateRecord(ctx context.Context, fields map[string]any) (*Record, error) {
	body, err := json.Marshal(createRequest{Records: []Record{{Fields: fields}}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("airtable API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode airtable response: %w", err)
	}
	if len(out.Records) == 0 {
		return nil, fmt.Errorf("airtable returned no records")
	}
	return &out.Records[0], nil
}

package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"billing-automation/pkg/vendorhttp"
)

// Client is the ClickUp v2 REST client. ClickUp personal tokens are sent
// as the raw Authorization header.
type Client struct {
	token   string
	baseURL string
	http    *vendorhttp.Client
}

func NewClient(token string, httpClient *http.Client) *Client {
	return &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		http:    vendorhttp.New(httpClient, vendorhttp.DefaultSettings("clickup")),
	}
}

// SetBaseURL overrides the default ClickUp API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/task/"+taskID, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SetDateField writes t into a date custom field, time of day included.
func (c *Client) SetDateField(ctx context.Context, taskID, fieldID string, t time.Time) error {
	req := setFieldRequest{
		Value:        t.UnixMilli(),
		ValueOptions: map[string]any{"time": true},
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/task/%s/field/%s", taskID, fieldID), req, nil)
}

// CreateTask creates a task in listID. Set req.Parent to create a subtask.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/list/"+listID+"/task", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListWebhooks returns the webhooks of a workspace.
func (c *Client) ListWebhooks(ctx context.Context, teamID string) ([]Webhook, error) {
	var out listWebhooksResponse
	if err := c.do(ctx, http.MethodGet, "/team/"+teamID+"/webhook", nil, &out); err != nil {
		return nil, err
	}
	return out.Webhooks, nil
}

// CreateWebhook registers endpoint for events in a workspace.
func (c *Client) CreateWebhook(ctx context.Context, teamID, endpoint string, events []string) (*Webhook, error) {
	var out createWebhookResponse
	req := createWebhookRequest{Endpoint: endpoint, Events: events}
	if err := c.do(ctx, http.MethodPost, "/team/"+teamID+"/webhook", req, &out); err != nil {
		return nil, err
	}
	if out.Webhook.ID == "" {
		out.Webhook.ID = out.ID
	}
	return &out.Webhook, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var rd io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal clickup request: %w", err)
		}
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("failed to build clickup request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clickup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("clickup API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode clickup response: %w", err)
	}
	return nil
}

package clickup

import (
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.clickup.com/api/v2"

// Task is the subset of a ClickUp task used by this service.
type Task struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	StartDate    string        `json:"start_date"`
	DueDate      string        `json:"due_date"`
	URL          string        `json:"url"`
	Tags         []Tag         `json:"tags"`
	CustomFields []CustomField `json:"custom_fields"`
	List         struct {
		ID string `json:"id"`
	} `json:"list"`
}

// Start returns the task start date, or false when unset.
func (t Task) Start() (time.Time, bool) {
	return ParseMillis(t.StartDate)
}

// TagNames returns the tag names of the task.
func (t Task) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

type Tag struct {
	Name string `json:"name"`
}

// CustomField is a task custom field; Value is kept opaque.
type CustomField struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// CreateTaskRequest is the body of POST /list/{id}/task.
type CreateTaskRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Parent        string `json:"parent,omitempty"`
	StartDate     int64  `json:"start_date,omitempty"`
	StartDateTime bool   `json:"start_date_time,omitempty"`
	DueDate       int64  `json:"due_date,omitempty"`
	DueDateTime   bool   `json:"due_date_time,omitempty"`
}

// Webhook is a registered ClickUp webhook.
type Webhook struct {
	ID       string   `json:"id"`
	Endpoint string   `json:"endpoint"`
	Events   []string `json:"events"`
	Secret   string   `json:"secret"`
}

type createWebhookRequest struct {
	Endpoint string   `json:"endpoint"`
	Events   []string `json:"events"`
}

type createWebhookResponse struct {
	ID      string  `json:"id"`
	Webhook Webhook `json:"webhook"`
}

type listWebhooksResponse struct {
	Webhooks []Webhook `json:"webhooks"`
}

type setFieldRequest struct {
	Value        any            `json:"value"`
	ValueOptions map[string]any `json:"value_options,omitempty"`
}

// ParseMillis parses a ClickUp epoch-milliseconds string.
func ParseMillis(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

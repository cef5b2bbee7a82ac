package webhook

import (
	"encoding/json"
	"time"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string        // ClickUp webhook secret; empty disables signature checks
	AllowedIPs      []string      // IP whitelist (optional)
	RateLimitPerMin int           // Max requests per minute per source; 0 disables
	DedupeTTL       time.Duration // How long a history item id is remembered
}

const (
	EventTaskCreated = "taskCreated"
	EventTaskUpdated = "taskUpdated"

	fieldStartDate = "start_date"
)

// Disposition values reported to the caller and to metrics.
const (
	DispositionAccepted  = "accepted"
	DispositionIgnored   = "ignored"
	DispositionDuplicate = "duplicate"
	DispositionRejected  = "rejected"
)

// Payload is the body ClickUp posts for task events.
type Payload struct {
	Event        string        `json:"event"`
	TaskID       string        `json:"task_id"`
	WebhookID    string        `json:"webhook_id"`
	HistoryItems []HistoryItem `json:"history_items"`
}

// HistoryItem is one change carried by a task event. Before and After
// depend on the field, so they are kept raw.
type HistoryItem struct {
	ID     string          `json:"id"`
	Field  string          `json:"field"`
	Before json.RawMessage `json:"before,omitempty"`
	After  json.RawMessage `json:"after,omitempty"`
}

package leave

import (
	"time"

	"billing-automation/pkg/clickup"
)

// Strategy selects how the leave time is written back to the tracker.
type Strategy string

const (
	StrategyField   Strategy = "field"
	StrategySubtask Strategy = "subtask"
)

const (
	StatusProcessed = "processed"
	StatusSkipped   = "skipped"
)

// Config is the static configuration of the leave use case.
type Config struct {
	Rules               []KeywordRule
	DefaultMinutes      int
	Strategy            Strategy
	LeaveFieldID        string
	Location            *time.Location
	PushcutNotification string
	TelegramChatID      string
	CalendarID          string
}

// SinkResult is the outcome of one publish target.
type SinkResult struct {
	Attempted bool   `json:"attempted"`
	Success   bool   `json:"success"`
	Detail    string `json:"detail,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ProcessOutput struct {
	TaskID         string
	TaskName       string
	Status         string
	Reason         string
	StartTime      time.Time
	LeaveTime      time.Time
	TravelMinutes  int
	MatchedKeyword string
	Tracker        SinkResult
	Notifications  map[string]SinkResult
}

type TaskFieldsOutput struct {
	TaskID   string
	TaskName string
	Fields   []clickup.CustomField
}

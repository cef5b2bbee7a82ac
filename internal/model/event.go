package model

import "time"

// TriggerSource is where a leave computation was requested from.
type TriggerSource string

const (
	SourceClickUp TriggerSource = "clickup"
	SourceManual  TriggerSource = "manual"
)

// LeaveTrigger asks for the leave time of one task to be computed.
type LeaveTrigger struct {
	Source        TriggerSource
	TaskID        string
	EventType     string     // taskCreated, taskUpdated or empty for manual runs
	WebhookID     string     // ClickUp webhook id, empty for manual runs
	HistoryItemID string     // history item that caused the event, if any
	StartOverride *time.Time // start time carried by the event; nil means read it from the task
	ReceivedAt    time.Time
}

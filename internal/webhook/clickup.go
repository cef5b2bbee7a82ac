package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"billing-automation/internal/model"
	"billing-automation/pkg/clickup"
)

var errInvalidPayload = errors.New("invalid webhook payload")

// parseResult is a parsed event. Trigger is nil when the event is ignored.
type parseResult struct {
	Trigger *model.LeaveTrigger
	Event   string
	Reason  string
}

// parseClickUpEvent turns a ClickUp task event into a leave trigger.
func parseClickUpEvent(payload []byte, now time.Time) (parseResult, error) {
	var p Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		return parseResult{}, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	if p.Event == "" {
		return parseResult{}, fmt.Errorf("%w: event is required", errInvalidPayload)
	}

	res := parseResult{Event: p.Event}
	switch p.Event {
	case EventTaskCreated, EventTaskUpdated:
	default:
		res.Reason = "unsupported event type"
		return res, nil
	}
	if p.TaskID == "" {
		return parseResult{}, fmt.Errorf("%w: task_id is required", errInvalidPayload)
	}

	trigger := &model.LeaveTrigger{
		Source:     model.SourceClickUp,
		TaskID:     p.TaskID,
		EventType:  p.Event,
		WebhookID:  p.WebhookID,
		ReceivedAt: now,
	}
	if len(p.HistoryItems) > 0 {
		trigger.HistoryItemID = p.HistoryItems[0].ID
	}

	if p.Event == EventTaskCreated {
		res.Trigger = trigger
		return res, nil
	}

	item, ok := startDateItem(p.HistoryItems)
	if !ok {
		res.Reason = "no start date change"
		return res, nil
	}
	start, ok := parseMillisValue(item.After)
	if !ok {
		res.Reason = "start date cleared"
		return res, nil
	}
	trigger.HistoryItemID = item.ID
	trigger.StartOverride = &start
	res.Trigger = trigger
	return res, nil
}

func startDateItem(items []HistoryItem) (HistoryItem, bool) {
	for _, it := range items {
		if it.Field == fieldStartDate {
			return it, true
		}
	}
	return HistoryItem{}, false
}

// parseMillisValue accepts epoch milliseconds as a JSON string or number.
func parseMillisValue(raw json.RawMessage) (time.Time, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, false
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return clickup.ParseMillis(s)
}

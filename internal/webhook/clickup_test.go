package webhook

import (
	"errors"
	"testing"
	"time"
)

func TestParseClickUpEvent(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("taskCreated uses the task start date", func(t *testing.T) {
		res, err := parseClickUpEvent([]byte(`{"event":"taskCreated","task_id":"t1","webhook_id":"w1","history_items":[{"id":"h1","field":"task_creation"}]}`), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tr := res.Trigger
		if tr == nil || tr.TaskID != "t1" || tr.WebhookID != "w1" || tr.HistoryItemID != "h1" {
			t.Fatalf("unexpected trigger: %+v", tr)
		}
		if tr.StartOverride != nil {
			t.Errorf("expected no override for taskCreated")
		}
		if !tr.ReceivedAt.Equal(now) {
			t.Errorf("unexpected ReceivedAt: %s", tr.ReceivedAt)
		}
	})

	t.Run("taskUpdated with start_date as string", func(t *testing.T) {
		res, err := parseClickUpEvent([]byte(`{"event":"taskUpdated","task_id":"t1","history_items":[
			{"id":"h0","field":"name","before":"a","after":"b"},
			{"id":"h1","field":"start_date","before":null,"after":"1714557600000"}]}`), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tr := res.Trigger
		if tr == nil || tr.StartOverride == nil || !tr.StartOverride.Equal(start) {
			t.Fatalf("unexpected trigger: %+v", tr)
		}
		if tr.HistoryItemID != "h1" {
			t.Errorf("expected start_date item id, got %s", tr.HistoryItemID)
		}
	})

	t.Run("taskUpdated with start_date as number", func(t *testing.T) {
		res, err := parseClickUpEvent([]byte(`{"event":"taskUpdated","task_id":"t1","history_items":[{"id":"h1","field":"start_date","after":1714557600000}]}`), now)
		if err != nil || res.Trigger == nil || !res.Trigger.StartOverride.Equal(start) {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	ignored := []struct {
		name   string
		body   string
		reason string
	}{
		{"Other field changed", `{"event":"taskUpdated","task_id":"t1","history_items":[{"id":"h1","field":"name"}]}`, "no start date change"},
		{"Start date cleared", `{"event":"taskUpdated","task_id":"t1","history_items":[{"id":"h1","field":"start_date","after":null}]}`, "start date cleared"},
		{"Unsupported event", `{"event":"taskDeleted","task_id":"t1"}`, "unsupported event type"},
	}
	for _, tt := range ignored {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parseClickUpEvent([]byte(tt.body), now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Trigger != nil || res.Reason != tt.reason {
				t.Errorf("expected ignored with %q, got %+v", tt.reason, res)
			}
		})
	}

	invalid := []struct {
		name string
		body string
	}{
		{"Not JSON", `not json`},
		{"Missing event", `{"task_id":"t1"}`},
		{"Missing task id", `{"event":"taskCreated"}`},
		{"Wrong shape", `{"event":"taskUpdated","task_id":"t1","history_items":{}}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseClickUpEvent([]byte(tt.body), now)
			if !errors.Is(err, errInvalidPayload) {
				t.Errorf("expected invalid payload error, got %v", err)
			}
		})
	}
}

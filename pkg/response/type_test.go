package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"billing-automation/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-03-27"` {
		t.Errorf("expected \"2024-03-27\", got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00.000Z"` {
		t.Errorf("unexpected DateTime encoding: %s", b)
	}

	b, _ = json.Marshal(response.DateTime(time.Time{}))
	if string(b) != "null" {
		t.Errorf("expected null for zero DateTime, got %s", b)
	}
}

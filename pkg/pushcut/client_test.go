package pushcut_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing-automation/pkg/pushcut"
)

func TestTrigger(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("API-Key") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.EscapedPath() != "/notifications/Time%20to%20Leave" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"id":"n1"}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		c := pushcut.NewClient("key", nil)
		c.SetBaseURL(ts.URL)

		err := c.Trigger(context.Background(), "Time to Leave", pushcut.Notification{
			Title:        "Leave for Dentist",
			Text:         "Leave at 07:40",
			DelaySeconds: 90,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["delay"] != "90s" || body["title"] != "Leave for Dentist" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("Wrong key", func(t *testing.T) {
		c := pushcut.NewClient("bad", nil)
		c.SetBaseURL(ts.URL)

		if err := c.Trigger(context.Background(), "Time to Leave", pushcut.Notification{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"billing-automation/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func clientFor(t *testing.T, ts *httptest.Server) *gcalendar.Client {
	t.Helper()
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	installed := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token file", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installed), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token file", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installed), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installed), filepath.Join(dir, "missing.json")); err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestUpsertReminder(t *testing.T) {
	leaveAt := time.Date(2024, 5, 1, 8, 15, 0, 0, time.UTC)

	t.Run("Inserts when no reminder exists", func(t *testing.T) {
		var inserted map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				if got := r.URL.Query().Get("privateExtendedProperty"); got != "leaveSourceId=task-1" {
					t.Errorf("unexpected filter: %s", got)
				}
				w.Write([]byte(`{"items": []}`))
			case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/primary/events":
				json.NewDecoder(r.Body).Decode(&inserted)
				w.Write([]byte(`{"id":"evt-1","summary":"Leave for Dentist","htmlLink":"https://calendar.google.com/evt-1"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		ev, err := clientFor(t, ts).UpsertReminder(context.Background(), gcalendar.Reminder{
			SourceID: "task-1",
			Summary:  "Leave for Dentist",
			LeaveAt:  leaveAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.ID != "evt-1" || ev.Updated {
			t.Errorf("unexpected event: %+v", ev)
		}
		if !ev.End.Equal(leaveAt.Add(15 * time.Minute)) {
			t.Errorf("expected default 15 minute duration, got end %s", ev.End)
		}
		start := inserted["start"].(map[string]any)
		if start["dateTime"] != "2024-05-01T08:15:00Z" {
			t.Errorf("unexpected start: %v", start["dateTime"])
		}
	})

	t.Run("Updates the reminder of the same task", func(t *testing.T) {
		var updated bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet:
				w.Write([]byte(`{"items": [{"id":"evt-9"}]}`))
			case r.Method == http.MethodPut && r.URL.Path == "/calendar/v3/calendars/work/events/evt-9":
				updated = true
				w.Write([]byte(`{"id":"evt-9"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		ev, err := clientFor(t, ts).UpsertReminder(context.Background(), gcalendar.Reminder{
			CalendarID: "work",
			SourceID:   "task-1",
			LeaveAt:    leaveAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated || !ev.Updated {
			t.Errorf("expected existing reminder to be updated")
		}
	})

	t.Run("API error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		_, err := clientFor(t, ts).UpsertReminder(context.Background(), gcalendar.Reminder{LeaveAt: leaveAt})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}

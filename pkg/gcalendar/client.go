package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts Service Account JSON, or OAuth desktop
// credentials together with a token file written by scripts/oauth-bootstrap.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a token file at %s: %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return newClient(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opt option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertReminder creates the leave reminder for r.SourceID, or replaces the
// one created earlier for the same source.
func (c *Client) UpsertReminder(ctx context.Context, r Reminder) (*Event, error) {
	calendarID := r.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	dur := r.Duration
	if dur <= 0 {
		dur = 15 * time.Minute
	}
	end := r.LeaveAt.Add(dur)

	event := &calendar.Event{
		Summary:     r.Summary,
		Description: r.Description,
		Location:    r.Location,
		Start:       &calendar.EventDateTime{DateTime: r.LeaveAt.Format(time.RFC3339), TimeZone: r.Timezone},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: r.Timezone},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: 0}},
			ForceSendFields: []string{"UseDefault"},
		},
	}
	if r.SourceID != "" {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{sourceKey: r.SourceID},
		}
	}

	existing, err := c.findBySource(ctx, calendarID, r.SourceID)
	if err != nil {
		return nil, err
	}

	var saved *calendar.Event
	if existing != "" {
		saved, err = c.service.Events.Update(calendarID, existing, event).Context(ctx).Do()
	} else {
		saved, err = c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save calendar reminder: %w", err)
	}

	return &Event{
		ID:       saved.Id,
		Summary:  saved.Summary,
		HtmlLink: saved.HtmlLink,
		Start:    r.LeaveAt,
		End:      end,
		Updated:  existing != "",
	}, nil
}

func (c *Client) findBySource(ctx context.Context, calendarID, sourceID string) (string, error) {
	if sourceID == "" {
		return "", nil
	}
	res, err := c.service.Events.List(calendarID).
		PrivateExtendedProperty(sourceKey + "=" + sourceID).
		ShowDeleted(false).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up existing reminder: %w", err)
	}
	if len(res.Items) == 0 {
		return "", nil
	}
	return res.Items[0].Id, nil
}

package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Details    string `json:"details,omitempty"`
	Example    any    `json:"example,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Date is a calendar date that marshals as DateFormat in UTC.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DateTime is an instant that marshals as RFC 3339 in UTC, or null when zero.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(DateTimeFormat))
}

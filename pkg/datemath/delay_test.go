package datemath_test

import (
	"testing"

	"billing-automation/pkg/datemath"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantDays   int
		wantMonths int
		wantOrig   string
	}{
		{name: "Empty", input: "", wantOrig: "none"},
		{name: "Whitespace only", input: "   ", wantOrig: "none"},
		{name: "Days then months", input: "5 days 2 months", wantDays: 5, wantMonths: 2, wantOrig: "5 days 2 months"},
		{name: "Months then days", input: "2 months and 5 days", wantDays: 5, wantMonths: 2, wantOrig: "2 months and 5 days"},
		{name: "Singular units", input: "1 day, 1 month", wantDays: 1, wantMonths: 1, wantOrig: "1 day, 1 month"},
		{name: "No separator", input: "10days3months", wantDays: 10, wantMonths: 3, wantOrig: "10days3months"},
		{name: "Case insensitive", input: "7 DAYS 4 Months", wantDays: 7, wantMonths: 4, wantOrig: "7 DAYS 4 Months"},
		{name: "Only months", input: "3 months", wantMonths: 3, wantOrig: "3 months"},
		{name: "Only days", input: "14 days", wantDays: 14, wantOrig: "14 days"},
		{name: "First match wins", input: "2 days or 9 days", wantDays: 2, wantOrig: "2 days or 9 days"},
		{name: "Garbage", input: "next week please", wantOrig: "next week please"},
		{name: "Overflow becomes zero", input: "99999999999999999999 days", wantOrig: "99999999999999999999 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ParseDelay(tt.input)
			if got.Days != tt.wantDays || got.Months != tt.wantMonths {
				t.Errorf("ParseDelay(%q) = {%d days, %d months}, want {%d, %d}",
					tt.input, got.Days, got.Months, tt.wantDays, tt.wantMonths)
			}
			if got.Original != tt.wantOrig {
				t.Errorf("ParseDelay(%q).Original = %q, want %q", tt.input, got.Original, tt.wantOrig)
			}
		})
	}
}

func TestDelayIsZero(t *testing.T) {
	if !datemath.ParseDelay("").IsZero() {
		t.Errorf("empty delay should be zero")
	}
	if datemath.ParseDelay("1 day").IsZero() {
		t.Errorf("1 day should not be zero")
	}
}

package leave

import (
	"strings"
	"time"
)

const (
	DefaultTravelMinutes = 60
	GateKeyword          = "appointment"
)

// KeywordRule maps a lowercase keyword to a travel duration in minutes.
type KeywordRule struct {
	Keyword string
	Minutes int
}

// DefaultRules is the built-in travel table. Order matters: the first
// keyword contained in the task text wins.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{"mosque", 45},
		{"office", 30},
		{"doctor", 20},
		{"quran", 45},
		{"qur'an", 45},
		{"quran class", 45},
		{"islamic", 45},
		{"masjid", 45},
		{"prayer", 45},
		{"salah", 45},
		{"appointment", 30},
		{"meeting", 30},
		{"dentist", 20},
		{"medical", 20},
		{"hospital", 30},
		{"clinic", 20},
	}
}

// Estimate returns the travel minutes for a task and the keyword that matched.
// The keyword is empty when defaultMinutes was used.
func Estimate(rules []KeywordRule, defaultMinutes int, name, description string) (int, string) {
	text := strings.ToLower(name + " " + description)
	for _, r := range rules {
		if r.Keyword != "" && strings.Contains(text, strings.ToLower(r.Keyword)) {
			return r.Minutes, r.Keyword
		}
	}
	return defaultMinutes, ""
}

// HasGateTag reports whether any tag contains gate, ignoring case.
func HasGateTag(tags []string, gate string) bool {
	gate = strings.ToLower(gate)
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), gate) {
			return true
		}
	}
	return false
}

// LeaveTime is start minus the travel duration.
func LeaveTime(start time.Time, minutes int) time.Time {
	return start.Add(-time.Duration(minutes) * time.Minute)
}

package billing

import (
	"time"

	"billing-automation/internal/goal"
	"billing-automation/pkg/datemath"
)

const (
	ScriptName = "Billing Date Calculator"
	Source     = "billing-date-calculator"
)

type CalculateInput struct {
	ContactID    string
	Date         string
	Delay        string
	SkipWebhook  bool
	SkipAirtable bool
	SkipGoals    bool
	Goal         goal.Config
}

// IntegrationResult is the outcome of one optional side effect.
type IntegrationResult struct {
	Attempted bool           `json:"attempted"`
	Success   bool           `json:"success"`
	Reason    string         `json:"reason,omitempty"`
	RecordID  string         `json:"recordId,omitempty"`
	Response  map[string]any `json:"response,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type Integrations struct {
	Airtable IntegrationResult
	Webhook  IntegrationResult
	KeapGoal goal.Result
}

type CalculateOutput struct {
	ContactID      string
	OriginalDate   time.Time
	Delay          datemath.Delay
	CalculatedDate time.Time
	Integrations   Integrations
}

// DayOfMonth is the day of the calculated billing date.
func (o CalculateOutput) DayOfMonth() int {
	return o.CalculatedDate.Day()
}

package goal

import (
	"time"

	"billing-automation/pkg/keap"
)

const (
	TypeSuccess = "success"
	TypeError   = "error"

	MethodCallName = "call_name_discovery"
	MethodGoalID   = "direct_goal_id"

	SourceRequest     = "request"
	SourceEnvironment = "environment"

	DefaultIntegration      = keap.DefaultIntegration
	DefaultDiscoveryTimeout = 8 * time.Second
)

// Config selects the goals of one request. Empty fields fall back to Defaults.
type Config struct {
	SuccessCallName string
	ErrorCallName   string
	Integration     string
	SuccessGoalID   string
	ErrorGoalID     string
}

// Defaults are the environment-level goal settings.
type Defaults struct {
	SuccessGoalID    string
	ErrorGoalID      string
	Integration      string
	DiscoveryTimeout time.Duration
}

type DispatchInput struct {
	ContactID   string
	Success     bool
	ErrorDetail string // only sent with the error goal
	Config      Config
}

// Discovery locates a goal inside a campaign.
type Discovery struct {
	GoalID       int64  `json:"goalId"`
	CampaignID   int64  `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	GoalName     string `json:"goalName"`
	Method       string `json:"discoveryMethod"`
}

// Result is the per-request outcome of a goal dispatch.
type Result struct {
	Attempted      bool           `json:"attempted"`
	Success        bool           `json:"success"`
	GoalType       string         `json:"goalType"`
	Method         string         `json:"method,omitempty"`
	Source         string         `json:"source,omitempty"`
	Skipped        bool           `json:"skipped,omitempty"`
	Reason         string         `json:"reason,omitempty"`
	Error          string         `json:"error,omitempty"`
	CallName       string         `json:"callName,omitempty"`
	Integration    string         `json:"integration,omitempty"`
	GoalID         string         `json:"goalId,omitempty"`
	Discovery      *Discovery     `json:"goalDiscovery,omitempty"`
	DiscoveryError string         `json:"discoveryError,omitempty"`
	ErrorDetail    string         `json:"errorDetails,omitempty"`
	Response       map[string]any `json:"response,omitempty"`
}

// HealthOutput describes whether goals can be triggered.
type HealthOutput struct {
	Ready                bool
	OAuthConfigured      bool
	HasOAuthTokens       bool
	HasLegacyKey         bool
	AuthMethod           string
	AutomaticRefresh     bool
	TokenExpiresAt       time.Time
	DefaultSuccessGoalID string
	DefaultErrorGoalID   string
	Integration          string
	DiscoveryTimeout     time.Duration
	BreakerState         string
}

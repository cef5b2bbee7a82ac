package keap

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"billing-automation/pkg/tokenstore"
)

const (
	DefaultBaseURL     = "https://api.infusionsoft.com/crm/rest/v1"
	DefaultIntegration = "billing-date-calculator"

	// OAuth endpoints of the authorization-code flow.
	AuthURL    = "https://signin.infusionsoft.com/app/oauth/authorize"
	TokenURL   = "https://api.infusionsoft.com/token"
	OAuthScope = "full"

	campaignsPath = "/campaigns"
	goalsPath     = "/campaigns/goals"
	profilePath   = "/account/profile"
)

var (
	ErrNoAccessToken = errors.New("no Keap access token available")
	ErrUnauthorized  = errors.New("Keap rejected the access token")
	ErrUpstream      = errors.New("Keap API error")
)

// TokenProvider supplies bearer tokens and refreshes them after a 401.
// *tokenstore.Store satisfies it.
type TokenProvider interface {
	AccessToken(ctx context.Context) string
	Refresh(ctx context.Context) (tokenstore.State, error)
	CanRefresh() bool
}

// Campaign is a Keap campaign with its goals.
type Campaign struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Goals []Goal `json:"goals"`
}

// Goal is an API goal inside a campaign.
type Goal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	CallName    string `json:"call_name"`
	Integration string `json:"integration"`
}

type campaignList struct {
	Campaigns []Campaign `json:"campaigns"`
}

// TriggerGoalRequest is the body of POST /campaigns/goals.
type TriggerGoalRequest struct {
	ContactID   ID     `json:"contact_id"`
	GoalID      ID     `json:"goal_id,omitempty"`
	CallName    string `json:"call_name,omitempty"`
	Integration string `json:"integration"`
}

// ID is a Keap identifier. It marshals as a JSON number when numeric.
type ID string

// MarshalJSON implements json.Marshaler for ID.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

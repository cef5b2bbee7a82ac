package http

import (
	"time"

	"billing-automation/internal/goal"
	"billing-automation/internal/model"
	"billing-automation/pkg/response"
)

// --- Request DTOs ---

type discoverReq struct {
	CallName    string `json:"callName"`
	Integration string `json:"integration"`
}

func (r discoverReq) validate() error {
	if r.CallName == "" {
		return goal.ErrMissingCallName
	}
	return nil
}

func (r discoverReq) integration() string {
	if r.Integration == "" {
		return goal.DefaultIntegration
	}
	return r.Integration
}

var discoverExample = map[string]any{
	"callName":    "billing_calculator_success",
	"integration": goal.DefaultIntegration,
}

type testReq struct {
	ContactID         model.FlexibleID `json:"contactId"`
	TestSuccess       *bool            `json:"testSuccess"`
	SuccessCallName   string           `json:"successCallName"`
	ErrorCallName     string           `json:"errorCallName"`
	Integration       string           `json:"integration"`
	KeapSuccessGoalID model.FlexibleID `json:"keapSuccessGoalId"`
	KeapErrorGoalID   model.FlexibleID `json:"keapErrorGoalId"`
}

func (r testReq) validate() error {
	if r.ContactID == "" {
		return goal.ErrMissingContactID
	}
	return nil
}

func (r testReq) success() bool {
	return r.TestSuccess == nil || *r.TestSuccess
}

func (r testReq) toInput() goal.DispatchInput {
	in := goal.DispatchInput{
		ContactID: r.ContactID.String(),
		Success:   r.success(),
		Config: goal.Config{
			SuccessCallName: r.SuccessCallName,
			ErrorCallName:   r.ErrorCallName,
			Integration:     r.Integration,
			SuccessGoalID:   r.KeapSuccessGoalID.String(),
			ErrorGoalID:     r.KeapErrorGoalID.String(),
		},
	}
	if !in.Success {
		in.ErrorDetail = "Test error scenario"
	}
	return in
}

var testExample = map[string]any{
	"contactId":       "12345",
	"testSuccess":     true,
	"successCallName": "billing_calculator_success",
	"errorCallName":   "billing_calculator_error",
}

// --- Response DTOs ---

type discoverResp struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	CallName    string         `json:"callName"`
	Integration string         `json:"integration"`
	Discovery   goal.Discovery `json:"discovery"`
}

type discoverFailedResp struct {
	Error       string `json:"error"`
	CallName    string `json:"callName"`
	Integration string `json:"integration"`
	Details     string `json:"details"`
	Suggestion  string `json:"suggestion"`
}

type testResp struct {
	Success    bool              `json:"success"`
	TestType   string            `json:"testType"`
	ContactID  string            `json:"contactId"`
	GoalResult goal.Result       `json:"goalResult"`
	Timestamp  response.DateTime `json:"timestamp"`
}

func newTestResp(req testReq, res goal.Result, now time.Time) testResp {
	return testResp{
		Success:    true,
		TestType:   res.GoalType,
		ContactID:  req.ContactID.String(),
		GoalResult: res,
		Timestamp:  response.DateTime(now),
	}
}

type healthResp struct {
	KeapGoalIntegration integrationHealth `json:"keapGoalIntegration"`
	OAuthStatus         oauthHealth       `json:"oauth_status"`
	Usage               map[string]string `json:"usage"`
}

type integrationHealth struct {
	Status               string `json:"status"`
	OAuthTokens          string `json:"oauth_tokens"`
	LegacyToken          string `json:"legacy_token"`
	AuthenticationMethod string `json:"authentication_method"`
	AutomaticRefresh     bool   `json:"automatic_refresh"`
	GoalDiscovery        bool   `json:"goalDiscoverySupported"`
	DiscoveryTimeout     string `json:"discoveryTimeout"`
	DefaultSuccessGoalID string `json:"defaultSuccessGoalId"`
	DefaultErrorGoalID   string `json:"defaultErrorGoalId"`
	Integration          string `json:"integration"`
	CircuitBreaker       string `json:"circuitBreaker"`
	Ready                bool   `json:"ready"`
}

type oauthHealth struct {
	Configured     bool              `json:"configured"`
	HasTokens      bool              `json:"has_tokens"`
	TokenExpiresAt response.DateTime `json:"token_expires_at"`
}

func presence(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func orNotConfigured(s string) string {
	if s == "" {
		return "not configured"
	}
	return s
}

func newHealthResp(h goal.HealthOutput) healthResp {
	return healthResp{
		KeapGoalIntegration: integrationHealth{
			Status:               presence(h.Ready, "configured", "not configured"),
			OAuthTokens:          presence(h.HasOAuthTokens, "present", "missing"),
			LegacyToken:          presence(h.HasLegacyKey, "present", "missing"),
			AuthenticationMethod: h.AuthMethod,
			AutomaticRefresh:     h.AutomaticRefresh,
			GoalDiscovery:        true,
			DiscoveryTimeout:     h.DiscoveryTimeout.String(),
			DefaultSuccessGoalID: orNotConfigured(h.DefaultSuccessGoalID),
			DefaultErrorGoalID:   orNotConfigured(h.DefaultErrorGoalID),
			Integration:          h.Integration,
			CircuitBreaker:       h.BreakerState,
			Ready:                h.Ready,
		},
		OAuthStatus: oauthHealth{
			Configured:     h.OAuthConfigured,
			HasTokens:      h.HasOAuthTokens,
			TokenExpiresAt: response.DateTime(h.TokenExpiresAt),
		},
		Usage: map[string]string{
			"OAuth Setup":    "Visit /oauth/authorize to get OAuth tokens",
			"Call Names":     "Use successCallName and errorCallName in requests",
			"Goal Discovery": "POST /goals/discover to test call name discovery",
			"Goal IDs":       "keapSuccessGoalId and keapErrorGoalId are used when no call name resolves",
		},
	}
}

package http

import (
	"billing-automation/internal/oauth"
	"billing-automation/pkg/response"
)

type tokenInfo struct {
	ExpiresIn int64             `json:"expires_in"`
	Scope     string            `json:"scope"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

type callbackResp struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	TokenInfo tokenInfo `json:"token_info"`
	NextSteps []string  `json:"next_steps"`
}

func newCallbackResp(out oauth.CallbackOutput) callbackResp {
	return callbackResp{
		Success: true,
		Message: "OAuth authorization successful",
		TokenInfo: tokenInfo{
			ExpiresIn: out.ExpiresIn,
			Scope:     out.Scope,
			ExpiresAt: response.DateTime(out.ExpiresAt),
		},
		NextSteps: []string{
			"Set KEAP_ACCESS_TOKEN environment variable to: " + out.AccessToken,
			"Set KEAP_REFRESH_TOKEN environment variable to: " + out.RefreshToken,
			"Your service will now automatically refresh tokens as needed",
		},
	}
}

type statusResp struct {
	OAuthConfigured  bool              `json:"oauth_configured"`
	HasAccessToken   bool              `json:"has_access_token"`
	HasRefreshToken  bool              `json:"has_refresh_token"`
	TokenExpiresAt   response.DateTime `json:"token_expires_at"`
	TokenValid       bool              `json:"token_valid"`
	FallbackToLegacy bool              `json:"fallback_to_legacy"`
}

func newStatusResp(out oauth.StatusOutput) statusResp {
	return statusResp{
		OAuthConfigured:  out.OAuthConfigured,
		HasAccessToken:   out.HasAccessToken,
		HasRefreshToken:  out.HasRefreshToken,
		TokenExpiresAt:   response.DateTime(out.ExpiresAt),
		TokenValid:       out.TokenValid,
		FallbackToLegacy: out.FallbackToLegacy,
	}
}

type refreshResp struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	ExpiresIn int64             `json:"expires_in"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

package oauth

import "time"

const StateTTL = 10 * time.Minute

type CallbackInput struct {
	Code        string
	State       string
	Error       string // error parameter sent back by the provider
	RedirectURL string
}

type CallbackOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	ExpiresAt    time.Time
	Scope        string
}

type StatusOutput struct {
	OAuthConfigured  bool
	HasAccessToken   bool
	HasRefreshToken  bool
	ExpiresAt        time.Time
	TokenValid       bool
	FallbackToLegacy bool
}

type RefreshOutput struct {
	ExpiresIn int64
	ExpiresAt time.Time
}

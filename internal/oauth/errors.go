package oauth

import "errors"

var (
	ErrNotConfigured  = errors.New("OAuth not configured")
	ErrDenied         = errors.New("OAuth authorization failed")
	ErrMissingCode    = errors.New("missing authorization code")
	ErrInvalidState   = errors.New("unknown or expired OAuth state")
	ErrExchangeFailed = errors.New("token exchange failed")
	ErrRefreshFailed  = errors.New("token refresh failed")
)

package tokenstore

import (
	"errors"
	"time"
)

// State is the OAuth credential held by a Store.
type State struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // zero when the lifetime is unknown
	Scope        string
}

// Config holds the client credentials, endpoints and initial tokens of a Store.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string

	// LegacyAPIKey is returned whenever no usable OAuth access token exists.
	LegacyAPIKey string

	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time

	// RefreshSkew is how long before expiry a refresh is attempted. Defaults to DefaultRefreshSkew.
	RefreshSkew time.Duration
}

const (
	DefaultRefreshSkew = 5 * time.Minute

	refreshKey = "refresh"
)

var (
	ErrMissingCredentials = errors.New("missing OAuth credentials for token refresh")
	ErrRefreshFailed      = errors.New("token refresh failed")
	ErrExchangeFailed     = errors.New("authorization code exchange failed")
	ErrNotConfigured      = errors.New("OAuth client id is not configured")
)

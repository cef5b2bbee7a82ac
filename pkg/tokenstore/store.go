package tokenstore

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	pkgLog "billing-automation/pkg/log"
)

// Store owns one OAuth credential and keeps it fresh.
//
// All reads and writes of the credential go through mu. Refreshes are
// collapsed with a singleflight group so concurrent callers share one
// token-endpoint round trip and observe the same resulting State.
type Store struct {
	mu    sync.RWMutex
	state State

	oauth      oauth2.Config
	legacyKey  string
	skew       time.Duration
	httpClient *http.Client
	now        func() time.Time
	group      singleflight.Group
	onRefresh  func(State, error)
	l          pkgLog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithHTTPClient sets the client used against the token endpoint.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Store) { s.httpClient = c }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRefreshHook registers fn to observe every refresh outcome.
func WithRefreshHook(fn func(State, error)) Option {
	return func(s *Store) { s.onRefresh = fn }
}

// New creates a Store seeded from cfg.
func New(cfg Config, l pkgLog.Logger, opts ...Option) *Store {
	skew := cfg.RefreshSkew
	if skew <= 0 {
		skew = DefaultRefreshSkew
	}

	s := &Store{
		state: State{
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
			ExpiresAt:    cfg.ExpiresAt,
		},
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		legacyKey:  cfg.LegacyAPIKey,
		skew:       skew,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
		l:          l,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AccessToken returns the token to authenticate a vendor call with.
//
// Without an OAuth access token it returns the legacy key, which may be empty.
// When the access token expires within the refresh skew it is refreshed first;
// if that refresh fails the legacy key is returned instead of an error.
func (s *Store) AccessToken(ctx context.Context) string {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()

	if st.AccessToken == "" {
		return s.legacyKey
	}

	if !st.ExpiresAt.IsZero() && !s.now().Add(s.skew).Before(st.ExpiresAt) {
		refreshed, err := s.Refresh(ctx)
		if err != nil {
			s.l.Warnf(ctx, "tokenstore.AccessToken: refresh failed, falling back to legacy API key: %v", err)
			return s.legacyKey
		}
		return refreshed.AccessToken
	}

	return st.AccessToken
}

// Refresh exchanges the refresh token for a new access token.
//
// Concurrent calls share a single exchange. The exchange is detached from the
// caller's cancellation so one impatient caller cannot fail the others.
func (s *Store) Refresh(ctx context.Context) (State, error) {
	v, err, shared := s.group.Do(refreshKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx))
	})
	if shared {
		s.l.Debugf(ctx, "tokenstore.Refresh: joined in-flight refresh")
	}
	if err != nil {
		return State{}, err
	}
	return v.(State), nil
}

func (s *Store) refresh(ctx context.Context) (st State, err error) {
	defer func() {
		if s.onRefresh != nil {
			s.onRefresh(st, err)
		}
	}()

	s.mu.RLock()
	refreshToken := s.state.RefreshToken
	s.mu.RUnlock()

	if refreshToken == "" || s.oauth.ClientID == "" || s.oauth.ClientSecret == "" {
		return State{}, ErrMissingCredentials
	}

	s.l.Infof(ctx, "tokenstore.refresh: refreshing OAuth access token")

	src := s.oauth.TokenSource(s.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	s.mu.Lock()
	s.state.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		s.state.RefreshToken = tok.RefreshToken
	}
	s.state.ExpiresAt = s.expiry(tok)
	if scope, _ := tok.Extra("scope").(string); scope != "" {
		s.state.Scope = scope
	}
	st = s.state
	s.mu.Unlock()

	s.l.Infof(ctx, "tokenstore.refresh: token refreshed, expires at %s", st.ExpiresAt.Format(time.RFC3339))
	return st, nil
}

// AuthCodeURL builds the vendor authorization URL for the code flow.
func (s *Store) AuthCodeURL(state, redirectURL string) (string, error) {
	if s.oauth.ClientID == "" {
		return "", ErrNotConfigured
	}
	cfg := s.oauth
	cfg.RedirectURL = redirectURL
	return cfg.AuthCodeURL(state), nil
}

// Exchange trades an authorization code for a full credential and installs it.
func (s *Store) Exchange(ctx context.Context, code, redirectURL string) (State, error) {
	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" {
		return State{}, ErrNotConfigured
	}

	cfg := s.oauth
	cfg.RedirectURL = redirectURL

	tok, err := cfg.Exchange(s.clientContext(ctx), code)
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	s.mu.Lock()
	s.state = State{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    s.expiry(tok),
	}
	s.state.Scope, _ = tok.Extra("scope").(string)
	st := s.state
	s.mu.Unlock()

	return st, nil
}

// Snapshot returns a copy of the current credential.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OAuthConfigured reports whether client id and secret are both set.
func (s *Store) OAuthConfigured() bool {
	return s.oauth.ClientID != "" && s.oauth.ClientSecret != ""
}

// HasLegacyKey reports whether a legacy API key is available as fallback.
func (s *Store) HasLegacyKey() bool {
	return s.legacyKey != ""
}

// CanRefresh reports whether a refresh token is held.
func (s *Store) CanRefresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken != ""
}

func (s *Store) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

func (s *Store) expiry(tok *oauth2.Token) time.Time {
	if tok.ExpiresIn > 0 {
		return s.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	}
	return tok.Expiry
}

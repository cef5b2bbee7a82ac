package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"billing-automation/internal/oauth"
	"billing-automation/pkg/tokenstore"
)

// Authorize issues a single-use state and returns the provider consent URL.
func (uc *implUseCase) Authorize(ctx context.Context, redirectURL string) (string, error) {
	state := uc.newID()
	u, err := uc.tokens.AuthCodeURL(state, redirectURL)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotConfigured) {
			return "", oauth.ErrNotConfigured
		}
		return "", err
	}

	uc.states.Add(state, struct{}{})
	uc.l.Infof(ctx, "oauth.usecase.Authorize: redirecting to provider, callback %s", redirectURL)
	return u, nil
}

// Callback validates the state and exchanges the code for tokens.
func (uc *implUseCase) Callback(ctx context.Context, input oauth.CallbackInput) (oauth.CallbackOutput, error) {
	if input.Error != "" {
		return oauth.CallbackOutput{}, fmt.Errorf("%w: %s", oauth.ErrDenied, input.Error)
	}
	if input.Code == "" {
		return oauth.CallbackOutput{}, oauth.ErrMissingCode
	}
	if input.State == "" {
		return oauth.CallbackOutput{}, oauth.ErrInvalidState
	}
	_, known := uc.states.Peek(input.State)
	uc.states.Remove(input.State)
	if !known {
		return oauth.CallbackOutput{}, oauth.ErrInvalidState
	}

	st, err := uc.tokens.Exchange(ctx, input.Code, input.RedirectURL)
	if err != nil {
		uc.l.Errorf(ctx, "oauth.usecase.Callback: %v", err)
		if errors.Is(err, tokenstore.ErrNotConfigured) {
			return oauth.CallbackOutput{}, oauth.ErrNotConfigured
		}
		return oauth.CallbackOutput{}, fmt.Errorf("%w: %v", oauth.ErrExchangeFailed, err)
	}

	uc.l.Infof(ctx, "oauth.usecase.Callback: OAuth tokens obtained")
	return oauth.CallbackOutput{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		ExpiresIn:    uc.secondsUntil(st.ExpiresAt),
		ExpiresAt:    st.ExpiresAt,
		Scope:        st.Scope,
	}, nil
}

// Status reports the credential state and probes the access token.
func (uc *implUseCase) Status(ctx context.Context) oauth.StatusOutput {
	st := uc.tokens.Snapshot()
	out := oauth.StatusOutput{
		OAuthConfigured:  uc.tokens.OAuthConfigured(),
		HasAccessToken:   st.AccessToken != "",
		HasRefreshToken:  st.RefreshToken != "",
		ExpiresAt:        st.ExpiresAt,
		FallbackToLegacy: uc.tokens.HasLegacyKey(),
	}

	if st.AccessToken != "" {
		ok, err := uc.prober.ProfileValid(ctx, st.AccessToken)
		if err != nil {
			uc.l.Warnf(ctx, "oauth.usecase.Status: profile probe failed: %v", err)
		}
		out.TokenValid = ok
	}
	return out
}

func (uc *implUseCase) Refresh(ctx context.Context) (oauth.RefreshOutput, error) {
	st, err := uc.tokens.Refresh(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "oauth.usecase.Refresh: %v", err)
		return oauth.RefreshOutput{}, fmt.Errorf("%w: %v", oauth.ErrRefreshFailed, err)
	}
	return oauth.RefreshOutput{
		ExpiresIn: uc.secondsUntil(st.ExpiresAt),
		ExpiresAt: st.ExpiresAt,
	}, nil
}

func (uc *implUseCase) secondsUntil(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return int64(t.Sub(uc.now()).Round(time.Second) / time.Second)
}

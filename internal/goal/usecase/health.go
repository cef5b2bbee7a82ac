package usecase

import (
	"context"

	"billing-automation/internal/goal"
)

func (uc *implUseCase) Health(ctx context.Context) goal.HealthOutput {
	st := uc.tokens.Snapshot()
	hasOAuth := st.AccessToken != "" && st.RefreshToken != ""
	hasLegacy := uc.tokens.HasLegacyKey()

	method := "none"
	switch {
	case hasOAuth:
		method = "OAuth 2.0"
	case hasLegacy:
		method = "Legacy API Key"
	}

	return goal.HealthOutput{
		Ready:                hasOAuth || hasLegacy,
		OAuthConfigured:      uc.tokens.OAuthConfigured(),
		HasOAuthTokens:       hasOAuth,
		HasLegacyKey:         hasLegacy,
		AuthMethod:           method,
		AutomaticRefresh:     hasOAuth,
		TokenExpiresAt:       st.ExpiresAt,
		DefaultSuccessGoalID: uc.defaults.SuccessGoalID,
		DefaultErrorGoalID:   uc.defaults.ErrorGoalID,
		Integration:          uc.defaults.Integration,
		DiscoveryTimeout:     uc.defaults.DiscoveryTimeout,
		BreakerState:         uc.crm.BreakerState(),
	}
}

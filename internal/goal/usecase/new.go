package usecase

import (
	"context"

	"billing-automation/internal/goal"
	"billing-automation/pkg/keap"
	pkgLog "billing-automation/pkg/log"
	"billing-automation/pkg/tokenstore"
)

// CRM is the part of the Keap client used for goals.
type CRM interface {
	ListCampaigns(ctx context.Context) ([]keap.Campaign, error)
	TriggerGoal(ctx context.Context, req keap.TriggerGoalRequest) (map[string]any, error)
	BreakerState() string
}

// TokenStatus exposes read-only credential state.
type TokenStatus interface {
	Snapshot() tokenstore.State
	OAuthConfigured() bool
	HasLegacyKey() bool
}

type implUseCase struct {
	l        pkgLog.Logger
	crm      CRM
	tokens   TokenStatus
	defaults goal.Defaults
}

var _ goal.UseCase = &implUseCase{}

// New creates a goal UseCase.
func New(l pkgLog.Logger, crm CRM, tokens TokenStatus, defaults goal.Defaults) *implUseCase {
	if defaults.Integration == "" {
		defaults.Integration = goal.DefaultIntegration
	}
	if defaults.DiscoveryTimeout <= 0 {
		defaults.DiscoveryTimeout = goal.DefaultDiscoveryTimeout
	}
	return &implUseCase{
		l:        l,
		crm:      crm,
		tokens:   tokens,
		defaults: defaults,
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"billing-automation/internal/goal"
)

// Discover searches every campaign for a goal matching callName and integration.
// The search is bounded by the configured discovery timeout.
func (uc *implUseCase) Discover(ctx context.Context, callName, integration string) (goal.Discovery, error) {
	if callName == "" {
		return goal.Discovery{}, goal.ErrMissingCallName
	}
	if integration == "" {
		integration = uc.defaults.Integration
	}

	timeout := uc.defaults.DiscoveryTimeout
	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	uc.l.Infof(ctx, "goal.usecase.Discover: looking up call_name=%q integration=%q", callName, integration)

	campaigns, err := uc.crm.ListCampaigns(dctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(dctx.Err(), context.DeadlineExceeded) {
			return goal.Discovery{}, fmt.Errorf("%w after %s; supply a goal id for a faster path", goal.ErrDiscoveryTimeout, timeout)
		}
		return goal.Discovery{}, fmt.Errorf("failed to fetch campaigns: %w", err)
	}

	for _, c := range campaigns {
		for _, g := range c.Goals {
			if g.CallName != callName || g.Integration != integration {
				continue
			}
			name := g.Name
			if name == "" {
				name = callName
			}
			uc.l.Infof(ctx, "goal.usecase.Discover: found goal %d in campaign %q", g.ID, c.Name)
			return goal.Discovery{
				GoalID:       g.ID,
				CampaignID:   c.ID,
				CampaignName: c.Name,
				GoalName:     name,
				Method:       "api_search",
			}, nil
		}
	}

	return goal.Discovery{}, fmt.Errorf("%w: no goal with call_name %q and integration %q exists in any active campaign",
		goal.ErrGoalNotFound, callName, integration)
}

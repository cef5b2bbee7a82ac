package usecase

import (
	"context"
	"fmt"
	"strconv"

	"billing-automation/internal/goal"
	"billing-automation/pkg/keap"
	"billing-automation/pkg/metrics"
)

// Dispatch resolves the goal for the request and triggers it.
//
// A call name is resolved through discovery first. When discovery fails the
// goal id from the request, then the configured default, is used. With
// neither a call name nor a goal id nothing is sent.
func (uc *implUseCase) Dispatch(ctx context.Context, input goal.DispatchInput) goal.Result {
	goalType := goal.TypeError
	callName, goalID := input.Config.ErrorCallName, input.Config.ErrorGoalID
	defaultID := uc.defaults.ErrorGoalID
	if input.Success {
		goalType = goal.TypeSuccess
		callName, goalID = input.Config.SuccessCallName, input.Config.SuccessGoalID
		defaultID = uc.defaults.SuccessGoalID
	}

	integration := input.Config.Integration
	if integration == "" {
		integration = uc.defaults.Integration
	}

	res := goal.Result{GoalType: goalType}
	if !input.Success {
		res.ErrorDetail = input.ErrorDetail
	}

	if callName != "" {
		res.CallName = callName
		res.Integration = integration

		d, err := uc.Discover(ctx, callName, integration)
		if err == nil {
			res.Attempted = true
			res.Method = goal.MethodCallName
			res.Source = goal.SourceRequest
			res.Discovery = &d
			uc.trigger(ctx, &res, input.ContactID, strconv.FormatInt(d.GoalID, 10), integration)
			return res
		}

		uc.l.Warnf(ctx, "goal.usecase.Dispatch: discovery of %q failed, falling back to goal id: %v", callName, err)
		res.DiscoveryError = err.Error()
	}

	source := goal.SourceRequest
	if goalID == "" {
		goalID, source = defaultID, goal.SourceEnvironment
	}

	if goalID != "" {
		res.Attempted = true
		res.Method = goal.MethodGoalID
		res.Source = source
		res.GoalID = goalID
		uc.trigger(ctx, &res, input.ContactID, goalID, integration)
		return res
	}

	if res.DiscoveryError != "" {
		res.Attempted = true
		res.Method = goal.MethodCallName
		res.Source = goal.SourceRequest
		res.Error = res.DiscoveryError
		metrics.GoalDispatches.WithLabelValues(goal.MethodCallName, metrics.OutcomeFailure).Inc()
		return res
	}

	res.Skipped = true
	res.Reason = fmt.Sprintf("No %s goal configured (neither call name nor goal ID provided)", goalType)
	metrics.GoalDispatches.WithLabelValues("none", metrics.OutcomeSkipped).Inc()
	return res
}

func (uc *implUseCase) trigger(ctx context.Context, res *goal.Result, contactID, goalID, integration string) {
	resp, err := uc.crm.TriggerGoal(ctx, keap.TriggerGoalRequest{
		ContactID:   keap.ID(contactID),
		GoalID:      keap.ID(goalID),
		CallName:    "billing_calculator_" + res.GoalType,
		Integration: integration,
	})
	metrics.GoalDispatches.WithLabelValues(res.Method, metrics.Outcome(err)).Inc()
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.trigger: %s goal %s for contact %s: %v", res.GoalType, goalID, contactID, err)
		res.Error = err.Error()
		return
	}

	uc.l.Infof(ctx, "goal.usecase.trigger: %s goal %s triggered for contact %s", res.GoalType, goalID, contactID)
	res.Success = true
	res.Response = resp
}

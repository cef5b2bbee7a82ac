package usecase

import (
	"context"
	"fmt"
	"strings"

	"billing-automation/internal/billing"
	"billing-automation/internal/goal"
	"billing-automation/pkg/datemath"
	"billing-automation/pkg/metrics"
)

// Calculate validates the input, computes the billing date and runs
// Airtable, the webhook and the goal in that order. Integration failures never
// fail the calculation; they are reported per integration and turn the goal
// into the error goal.
func (uc *implUseCase) Calculate(ctx context.Context, input billing.CalculateInput) (billing.CalculateOutput, error) {
	if input.ContactID == "" {
		return billing.CalculateOutput{}, billing.ErrMissingContactID
	}
	if strings.TrimSpace(input.Date) == "" {
		return billing.CalculateOutput{}, billing.ErrMissingDate
	}
	start, err := datemath.ParseDate(input.Date)
	if err != nil {
		return billing.CalculateOutput{}, billing.ErrInvalidDate
	}

	delay := datemath.ParseDelay(input.Delay)
	out := billing.CalculateOutput{
		ContactID:      input.ContactID,
		OriginalDate:   start,
		Delay:          delay,
		CalculatedDate: datemath.NextBillingDate(start, delay),
	}
	metrics.BillingCalculations.Inc()

	uc.l.Infof(ctx, "billing.usecase.Calculate: contact=%s date=%s delay=%q -> %s",
		out.ContactID, start.Format(datemath.DateLayout), delay.Original, out.CalculatedDate.Format(datemath.DateLayout))

	var failures []string

	if !input.SkipAirtable {
		out.Integrations.Airtable = uc.storeRecord(ctx, out)
		if e := out.Integrations.Airtable.Error; e != "" {
			failures = append(failures, "Airtable: "+e)
		}
	}

	if !input.SkipWebhook {
		out.Integrations.Webhook = uc.sendWebhook(ctx, out)
		if e := out.Integrations.Webhook.Error; e != "" {
			failures = append(failures, "Webhook: "+e)
		}
	}

	if !input.SkipGoals {
		out.Integrations.KeapGoal = uc.goals.Dispatch(ctx, goal.DispatchInput{
			ContactID:   input.ContactID,
			Success:     len(failures) == 0,
			ErrorDetail: strings.Join(failures, "; "),
			Config:      input.Goal,
		})
	}

	return out, nil
}

// ReportFailure dispatches the error goal carrying cause. Only the error-side
// goal configuration of the request is used.
func (uc *implUseCase) ReportFailure(ctx context.Context, input billing.CalculateInput, cause error) goal.Result {
	if input.ContactID == "" || input.SkipGoals {
		return goal.Result{GoalType: goal.TypeError, Skipped: true, Reason: "no contact id or goals skipped"}
	}

	detail := "unknown error"
	if cause != nil {
		detail = cause.Error()
	}
	uc.l.Warnf(ctx, "billing.usecase.ReportFailure: contact=%s: %s", input.ContactID, detail)

	return uc.goals.Dispatch(ctx, goal.DispatchInput{
		ContactID:   input.ContactID,
		Success:     false,
		ErrorDetail: detail,
		Config: goal.Config{
			ErrorCallName: input.Goal.ErrorCallName,
			ErrorGoalID:   input.Goal.ErrorGoalID,
			Integration:   input.Goal.Integration,
		},
	})
}

func notConfigured(name string) billing.IntegrationResult {
	return billing.IntegrationResult{Reason: fmt.Sprintf("%s not configured", name)}
}

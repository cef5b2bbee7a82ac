package billing

import (
	"context"

	"billing-automation/internal/goal"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Calculate computes the next billing date and runs the enabled integrations.
	Calculate(ctx context.Context, input CalculateInput) (CalculateOutput, error)
	// ReportFailure sends the error goal for a request that failed unexpectedly.
	ReportFailure(ctx context.Context, input CalculateInput, cause error) goal.Result
}

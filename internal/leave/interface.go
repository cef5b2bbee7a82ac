package leave

import (
	"context"

	"billing-automation/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process computes the leave time of the triggering task and publishes it.
	Process(ctx context.Context, trigger model.LeaveTrigger) (ProcessOutput, error)
	TaskFields(ctx context.Context, taskID string) (TaskFieldsOutput, error)
}

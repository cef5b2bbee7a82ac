package goal

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch triggers the success or error goal for a contact. It never
	// fails; the outcome is reported in Result.
	Dispatch(ctx context.Context, input DispatchInput) Result
	Discover(ctx context.Context, callName, integration string) (Discovery, error)
	Health(ctx context.Context) HealthOutput
}

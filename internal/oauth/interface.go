package oauth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Authorize(ctx context.Context, redirectURL string) (string, error)
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
	Status(ctx context.Context) StatusOutput
	Refresh(ctx context.Context) (RefreshOutput, error)
}

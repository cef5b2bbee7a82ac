package usecase

import (
	"context"
	"time"

	"billing-automation/internal/billing"
	"billing-automation/internal/goal"
	"billing-automation/pkg/airtable"
	pkgLog "billing-automation/pkg/log"
)

// RecordStore persists one result row per calculation.
type RecordStore interface {
	CreateRecord(ctx context.Context, fields map[string]any) (*airtable.Record, error)
}

// Notifier posts the calculation to an outbound webhook.
type Notifier interface {
	Post(ctx context.Context, payload any) (map[string]any, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	records  RecordStore
	notifier Notifier
	goals    goal.UseCase
	now      func() time.Time
	newID    func() string
}

var _ billing.UseCase = &implUseCase{}

// New creates a billing UseCase. records and notifier may be nil when the
// matching integration is not configured.
func New(l pkgLog.Logger, records RecordStore, notifier Notifier, goals goal.UseCase) *implUseCase {
	return &implUseCase{
		l:        l,
		records:  records,
		notifier: notifier,
		goals:    goals,
		now:      time.Now,
		newID:    newExecutionID,
	}
}

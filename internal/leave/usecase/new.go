package usecase

import (
	"context"
	"time"

	"billing-automation/internal/leave"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/gcalendar"
	pkgLog "billing-automation/pkg/log"
	"billing-automation/pkg/pushcut"
)

// Tracker is the task tracker the leave time is read from and written back to.
type Tracker interface {
	GetTask(ctx context.Context, taskID string) (*clickup.Task, error)
	SetDateField(ctx context.Context, taskID, fieldID string, t time.Time) error
	CreateTask(ctx context.Context, listID string, req clickup.CreateTaskRequest) (*clickup.Task, error)
}

type PushNotifier interface {
	Trigger(ctx context.Context, name string, n pushcut.Notification) error
}

type ChatNotifier interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type CalendarSink interface {
	UpsertReminder(ctx context.Context, r gcalendar.Reminder) (*gcalendar.Event, error)
}

// Sinks groups the optional notification targets. Nil fields are skipped.
type Sinks struct {
	Push     PushNotifier
	Chat     ChatNotifier
	Calendar CalendarSink
}

type implUseCase struct {
	l       pkgLog.Logger
	cfg     leave.Config
	tracker Tracker
	sinks   Sinks
	now     func() time.Time
}

var _ leave.UseCase = &implUseCase{}

func New(l pkgLog.Logger, cfg leave.Config, tracker Tracker, sinks Sinks) *implUseCase {
	if cfg.Rules == nil {
		cfg.Rules = leave.DefaultRules()
	}
	if cfg.DefaultMinutes <= 0 {
		cfg.DefaultMinutes = leave.DefaultTravelMinutes
	}
	if cfg.Strategy == "" {
		cfg.Strategy = leave.StrategyField
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &implUseCase{
		l:       l,
		cfg:     cfg,
		tracker: tracker,
		sinks:   sinks,
		now:     time.Now,
	}
}

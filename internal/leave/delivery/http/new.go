package http

import (
	"time"

	"billing-automation/internal/leave"
	pkgLog "billing-automation/pkg/log"
)

type handler struct {
	l   pkgLog.Logger
	uc  leave.UseCase
	now func() time.Time
}

// New creates the manual trigger and task inspection handlers.
func New(l pkgLog.Logger, uc leave.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}

package http

import (
	"billing-automation/internal/goal"
	pkgLog "billing-automation/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc goal.UseCase
}

// New creates a new HTTP handler for goal endpoints.
func New(l pkgLog.Logger, uc goal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"billing-automation/internal/billing"
	pkgLog "billing-automation/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc billing.UseCase
}

// New creates a new HTTP handler for the billing endpoint.
func New(l pkgLog.Logger, uc billing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

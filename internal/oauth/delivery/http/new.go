package http

import (
	"billing-automation/internal/oauth"
	pkgLog "billing-automation/pkg/log"
)

type handler struct {
	l           pkgLog.Logger
	uc          oauth.UseCase
	redirectURL string // empty means derive from the request host
}

// New creates the OAuth HTTP handler.
func New(l pkgLog.Logger, uc oauth.UseCase, redirectURL string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		redirectURL: redirectURL,
	}
}

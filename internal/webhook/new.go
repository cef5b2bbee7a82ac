package webhook

import (
	"sync"
	"time"

	"billing-automation/internal/leave"
	pkgLog "billing-automation/pkg/log"
)

const processTimeout = 2 * time.Minute

type Handler struct {
	leaveUC  leave.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewHandler(
	leaveUC leave.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		leaveUC:  leaveUC,
		security: NewSecurityValidator(securityConfig),
		l:        l,
		now:      time.Now,
	}
}

// Wait blocks until every accepted event has finished processing.
func (h *Handler) Wait() {
	h.wg.Wait()
}

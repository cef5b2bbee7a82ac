package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"billing-automation/internal/oauth"
	pkgLog "billing-automation/pkg/log"
	"billing-automation/pkg/tokenstore"
)

// TokenManager is the credential store driven by the OAuth endpoints.
type TokenManager interface {
	AuthCodeURL(state, redirectURL string) (string, error)
	Exchange(ctx context.Context, code, redirectURL string) (tokenstore.State, error)
	Refresh(ctx context.Context) (tokenstore.State, error)
	Snapshot() tokenstore.State
	OAuthConfigured() bool
	HasLegacyKey() bool
}

// ProfileProber checks a token against the CRM.
type ProfileProber interface {
	ProfileValid(ctx context.Context, token string) (bool, error)
}

const maxPendingStates = 256

type implUseCase struct {
	l      pkgLog.Logger
	tokens TokenManager
	prober ProfileProber
	states *expirable.LRU[string, struct{}]
	now    func() time.Time
	newID  func() string
}

var _ oauth.UseCase = &implUseCase{}

func New(l pkgLog.Logger, tokens TokenManager, prober ProfileProber) *implUseCase {
	return &implUseCase{
		l:      l,
		tokens: tokens,
		prober: prober,
		states: expirable.NewLRU[string, struct{}](maxPendingStates, nil, oauth.StateTTL),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

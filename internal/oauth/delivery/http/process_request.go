package http

import (
	"github.com/gin-gonic/gin"

	"billing-automation/internal/oauth"
)

const callbackPath = "/oauth/callback"

// callbackURL returns the configured redirect URL or one built from the
// request, honoring X-Forwarded-Proto behind a proxy.
func (h *handler) callbackURL(c *gin.Context) string {
	if h.redirectURL != "" {
		return h.redirectURL
	}
	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + c.Request.Host + callbackPath
}

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

func (h *handler) processCallbackReq(c *gin.Context) (oauth.CallbackInput, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return oauth.CallbackInput{}, err
	}
	return oauth.CallbackInput{
		Code:        req.Code,
		State:       req.State,
		Error:       req.Error,
		RedirectURL: h.callbackURL(c),
	}, nil
}

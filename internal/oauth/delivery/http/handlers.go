package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-automation/pkg/response"
)

// Authorize godoc
// @Summary     Start the OAuth authorization flow
// @Tags        OAuth
// @Success     302
// @Failure     400 {object} response.ErrorResp
// @Router      /oauth/authorize [GET]
func (h *handler) Authorize(c *gin.Context) {
	u, err := h.uc.Authorize(c.Request.Context(), h.callbackURL(c))
	if err != nil {
		c.JSON(h.mapError(err))
		return
	}
	c.Redirect(http.StatusFound, u)
}

// Callback godoc
// @Summary     OAuth redirect target
// @Description Exchanges the authorization code and prints the tokens to persist.
// @Tags        OAuth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued by /oauth/authorize"
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /oauth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCallbackReq(c)
	if err != nil {
		response.BadRequest(c, "Invalid callback parameters", nil)
		return
	}

	out, err := h.uc.Callback(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "oauth.delivery.http.Callback: %v", err)
		c.JSON(h.mapError(err))
		return
	}
	response.OK(c, newCallbackResp(out))
}

// Status godoc
// @Summary     OAuth token status
// @Tags        OAuth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /oauth/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status(c.Request.Context())))
}

// Refresh godoc
// @Summary     Refresh the OAuth access token now
// @Tags        OAuth
// @Produce     json
// @Success     200 {object} refreshResp
// @Failure     500 {object} response.ErrorResp
// @Router      /oauth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	out, err := h.uc.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(h.mapError(err))
		return
	}
	response.OK(c, refreshResp{
		Success:   true,
		Message:   "Token refreshed successfully",
		ExpiresIn: out.ExpiresIn,
		ExpiresAt: response.DateTime(out.ExpiresAt),
	})
}

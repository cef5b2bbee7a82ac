package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"billing-automation/pkg/response"
)

// Discover godoc
// @Summary     Discover a goal by call name
// @Description Searches every campaign for a goal with the given call name and integration.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       body body discoverReq true "Call name and integration"
// @Success     200 {object} discoverResp
// @Failure     400 {object} response.ErrorResp
// @Failure     404 {object} discoverFailedResp
// @Router      /goals/discover [POST]
func (h *handler) Discover(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDiscoverReq(c)
	if err != nil {
		status, msg := h.mapError(err)
		c.JSON(status, response.ErrorResp{Error: msg, Example: discoverExample})
		return
	}

	d, err := h.uc.Discover(ctx, req.CallName, req.integration())
	if err != nil {
		h.l.Warnf(ctx, "goal.delivery.http.Discover: %v", err)
		c.JSON(http.StatusNotFound, discoverFailedResp{
			Error:       "Goal discovery failed",
			CallName:    req.CallName,
			Integration: req.integration(),
			Details:     err.Error(),
			Suggestion:  discoverSuggestion,
		})
		return
	}

	response.OK(c, discoverResp{
		Success:     true,
		Message:     "Goal discovered successfully",
		CallName:    req.CallName,
		Integration: req.integration(),
		Discovery:   d,
	})
}

// Test godoc
// @Summary     Trigger a test goal
// @Description Dispatches the success or error goal for a contact using the same policy as billing calculations.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       body body testReq true "Contact and goal configuration"
// @Success     200 {object} testResp
// @Failure     400 {object} response.ErrorResp
// @Router      /goals/test [POST]
func (h *handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTestReq(c)
	if err != nil {
		status, msg := h.mapError(err)
		c.JSON(status, response.ErrorResp{Error: msg, Example: testExample})
		return
	}

	res := h.uc.Dispatch(ctx, req.toInput())
	response.OK(c, newTestResp(req, res, time.Now()))
}

// Health godoc
// @Summary     Goal integration readiness
// @Tags        Goals
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /keap-goals/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, newHealthResp(h.uc.Health(c.Request.Context())))
}

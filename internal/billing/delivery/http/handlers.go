package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-automation/internal/billing"
	"billing-automation/pkg/response"
)

// Calculate godoc
// @Summary     Calculate the next billing date
// @Description Applies the delay to the date and returns the next 15th or 27th strictly after it, then runs the enabled integrations.
// @Tags        Billing
// @Accept      json
// @Produce     json
// @Param       body body calculateReq true "Contact, start date and delay"
// @Success     200 {object} calculateResp
// @Failure     400 {object} response.ErrorResp
// @Failure     500 {object} response.ErrorResp
// @Router      /calculate-billing-date [POST]
func (h *handler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()
	var input billing.CalculateInput

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			h.l.Errorf(ctx, "billing.delivery.http.Calculate: %v", err)
			h.uc.ReportFailure(ctx, input, err)
			response.InternalError(c, err)
		}
	}()

	req, err := h.processCalculateReq(c)
	if err != nil {
		response.BadRequest(c, response.MessageInvalidJSON, calculateExample)
		return
	}
	input = req.toInput()

	out, err := h.uc.Calculate(ctx, input)
	if err != nil {
		status, msg, example := h.mapError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "billing.delivery.http.Calculate: %v", err)
			h.uc.ReportFailure(ctx, input, err)
			response.InternalError(c, err)
			return
		}
		c.JSON(status, response.ErrorResp{Error: msg, Example: example})
		return
	}

	response.OK(c, newCalculateResp(out))
}

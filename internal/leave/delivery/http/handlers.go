package http

import (
	"github.com/gin-gonic/gin"

	"billing-automation/internal/model"
	"billing-automation/pkg/response"
)

// ManualTrigger godoc
// @Summary     Compute the leave time of a task now
// @Description Runs the same pipeline as the ClickUp webhook for one task. startDate overrides the task start date.
// @Tags        Leave
// @Accept      json
// @Produce     json
// @Param       taskId path string           true  "ClickUp task id"
// @Param       body   body manualTriggerReq false "Optional start override"
// @Success     200 {object} processResp
// @Failure     400 {object} response.ErrorResp
// @Failure     502 {object} response.ErrorResp
// @Router      /manual-trigger/{taskId} [POST]
func (h *handler) ManualTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processManualTriggerReq(c)
	if err != nil {
		response.BadRequest(c, response.MessageInvalidJSON, manualTriggerExample)
		return
	}
	start, err := req.startOverride()
	if err != nil {
		c.JSON(h.mapError(err))
		return
	}

	out, err := h.uc.Process(ctx, model.LeaveTrigger{
		Source:        model.SourceManual,
		TaskID:        c.Param("taskId"),
		StartOverride: start,
		ReceivedAt:    h.now(),
	})
	if err != nil {
		h.l.Warnf(ctx, "leave.delivery.http.ManualTrigger: %v", err)
		c.JSON(h.mapError(err))
		return
	}

	response.OK(c, newProcessResp(out))
}

// TaskFields godoc
// @Summary     List the custom fields of a task
// @Description Helps locate the custom field id to configure as the leave time field.
// @Tags        Leave
// @Produce     json
// @Param       taskId path string true "ClickUp task id"
// @Success     200 {object} taskFieldsResp
// @Failure     502 {object} response.ErrorResp
// @Router      /task-fields/{taskId} [GET]
func (h *handler) TaskFields(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.TaskFields(ctx, c.Param("taskId"))
	if err != nil {
		h.l.Warnf(ctx, "leave.delivery.http.TaskFields: %v", err)
		c.JSON(h.mapError(err))
		return
	}

	response.OK(c, newTaskFieldsResp(out))
}

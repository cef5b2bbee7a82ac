package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-automation/internal/model"
	"billing-automation/pkg/metrics"
	"billing-automation/pkg/response"
)

// HandleClickUpWebhook godoc
// @Summary     Receive a ClickUp task event
// @Description Acknowledges immediately and computes the leave time in the background. taskUpdated is only processed when the start date changed.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Signature header string  false "hex HMAC-SHA256 of the body"
// @Param       body        body   Payload true  "ClickUp webhook body"
// @Success     200 {object} map[string]string
// @Failure     400 {object} response.ErrorResp
// @Failure     401 {object} response.ErrorResp
// @Failure     429 {object} response.ErrorResp
// @Router      /clickup-webhook [POST]
func (h *Handler) HandleClickUpWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleClickUpWebhook: read body: %v", err)
		response.BadRequest(c, "Unreadable body", nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook.HandleClickUpWebhook: %v", err)
		h.reject(c, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader("X-Signature")); err != nil {
		h.l.Warnf(ctx, "webhook.HandleClickUpWebhook: signature: %v", err)
		h.reject(c, http.StatusUnauthorized, "invalid signature")
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleClickUpWebhook: %v", err)
		metrics.WebhookEvents.WithLabelValues("", DispositionRejected).Inc()
		response.TooManyRequests(c)
		return
	}

	parsed, err := parseClickUpEvent(body, h.now())
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleClickUpWebhook: %v", err)
		h.reject(c, http.StatusBadRequest, err.Error())
		return
	}

	if parsed.Trigger == nil {
		h.l.Infof(ctx, "webhook.HandleClickUpWebhook: ignoring %s: %s", parsed.Event, parsed.Reason)
		metrics.WebhookEvents.WithLabelValues(parsed.Event, DispositionIgnored).Inc()
		response.OK(c, gin.H{"status": DispositionIgnored, "reason": parsed.Reason})
		return
	}

	if !h.security.FirstDelivery(parsed.Trigger.HistoryItemID) {
		h.l.Infof(ctx, "webhook.HandleClickUpWebhook: duplicate history item %s", parsed.Trigger.HistoryItemID)
		metrics.WebhookEvents.WithLabelValues(parsed.Event, DispositionDuplicate).Inc()
		response.OK(c, gin.H{"status": DispositionIgnored, "reason": "duplicate delivery"})
		return
	}

	metrics.WebhookEvents.WithLabelValues(parsed.Event, DispositionAccepted).Inc()
	h.wg.Add(1)
	go h.processAsync(*parsed.Trigger)

	response.OK(c, gin.H{"status": DispositionAccepted, "taskId": parsed.Trigger.TaskID})
}

func (h *Handler) reject(c *gin.Context, status int, msg string) {
	metrics.WebhookEvents.WithLabelValues("", DispositionRejected).Inc()
	c.JSON(status, response.ErrorResp{Error: msg})
}

// processAsync runs the leave pipeline detached from the request.
func (h *Handler) processAsync(trigger model.LeaveTrigger) {
	defer h.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			h.l.Errorf(ctx, "webhook.processAsync: panic processing task %s: %v", trigger.TaskID, rec)
		}
	}()

	h.l.Infof(ctx, "webhook.processAsync: %s for task %s", trigger.EventType, trigger.TaskID)

	out, err := h.leaveUC.Process(ctx, trigger)
	if err != nil {
		h.l.Errorf(ctx, "webhook.processAsync: task %s: %v", trigger.TaskID, err)
		return
	}

	h.l.Infof(ctx, "webhook.processAsync: task %s %s %s", out.TaskID, out.Status, out.Reason)
}

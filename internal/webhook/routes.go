package webhook

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.POST("/clickup-webhook", h.HandleClickUpWebhook)
}

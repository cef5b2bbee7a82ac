package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/manual-trigger/:taskId", h.ManualTrigger)
	r.GET("/task-fields/:taskId", h.TaskFields)
}

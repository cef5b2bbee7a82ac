package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps goal endpoints onto r.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/goals/discover", h.Discover)
	r.POST("/goals/test", h.Test)
	r.POST("/keap-goals/test", h.Test)
	r.GET("/keap-goals/health", h.Health)
}

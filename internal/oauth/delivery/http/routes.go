package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *handler) {
	g := r.Group("/oauth")
	{
		g.GET("/authorize", h.Authorize)
		g.GET("/callback", h.Callback)
		g.GET("/status", h.Status)
		g.POST("/refresh", h.Refresh)
	}
}

package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/calculate-billing-date", h.Calculate)
}

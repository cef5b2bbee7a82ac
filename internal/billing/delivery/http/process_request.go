package http

import "github.com/gin-gonic/gin"

func (h *handler) processCalculateReq(c *gin.Context) (calculateReq, error) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

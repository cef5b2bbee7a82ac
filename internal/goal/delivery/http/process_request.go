package http

import "github.com/gin-gonic/gin"

func (h *handler) processDiscoverReq(c *gin.Context) (discoverReq, error) {
	var req discoverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processTestReq(c *gin.Context) (testReq, error) {
	var req testReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

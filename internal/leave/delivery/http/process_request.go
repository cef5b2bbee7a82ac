package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processManualTriggerReq accepts an empty body as "use the task start date".
func (h *handler) processManualTriggerReq(c *gin.Context) (manualTriggerReq, error) {
	var req manualTriggerReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

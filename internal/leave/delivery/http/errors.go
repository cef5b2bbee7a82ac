package http

import (
	"errors"
	"net/http"

	"billing-automation/internal/leave"
	"billing-automation/pkg/response"
)

func (h *handler) mapError(err error) (int, response.ErrorResp) {
	switch {
	case errors.Is(err, leave.ErrMissingTaskID):
		return http.StatusBadRequest, response.ErrorResp{Error: "taskId is required"}
	case errors.Is(err, leave.ErrInvalidStartDate):
		return http.StatusBadRequest, response.ErrorResp{Error: err.Error(), Example: manualTriggerExample}
	case errors.Is(err, leave.ErrTaskLookupFailed):
		return http.StatusBadGateway, response.ErrorResp{Error: "Task lookup failed", Details: err.Error()}
	default:
		return http.StatusInternalServerError, response.ErrorResp{Error: response.MessageInternalError, Details: err.Error()}
	}
}

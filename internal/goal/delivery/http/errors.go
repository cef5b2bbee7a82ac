package http

import (
	"errors"
	"net/http"

	"billing-automation/internal/goal"
	"billing-automation/pkg/response"
)

const discoverSuggestion = "Make sure the goal exists in an active campaign with the correct call_name and integration values"

// mapError translates request errors into a status and message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, goal.ErrMissingCallName):
		return http.StatusBadRequest, "callName is required"
	case errors.Is(err, goal.ErrMissingContactID):
		return http.StatusBadRequest, "contactId is required for testing"
	case errors.Is(err, goal.ErrGoalNotFound), errors.Is(err, goal.ErrDiscoveryTimeout):
		return http.StatusNotFound, "Goal discovery failed"
	default:
		return http.StatusBadRequest, response.MessageInvalidJSON
	}
}

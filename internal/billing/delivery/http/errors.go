package http

import (
	"errors"
	"net/http"

	"billing-automation/internal/billing"
	"billing-automation/pkg/response"
)

// mapError translates use-case errors into status, message and example.
// Anything unrecognized is an internal error.
func (h *handler) mapError(err error) (int, string, any) {
	switch {
	case errors.Is(err, billing.ErrMissingContactID):
		return http.StatusBadRequest, "contactId is required", calculateExample
	case errors.Is(err, billing.ErrMissingDate):
		return http.StatusBadRequest, "date is required", calculateExample
	case errors.Is(err, billing.ErrInvalidDate):
		return http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD", dateExample
	default:
		return http.StatusInternalServerError, response.MessageInternalError, nil
	}
}

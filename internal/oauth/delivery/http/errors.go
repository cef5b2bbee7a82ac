package http

import (
	"errors"
	"net/http"

	"billing-automation/internal/oauth"
	"billing-automation/pkg/response"
)

func (h *handler) mapError(err error) (int, response.ErrorResp) {
	switch {
	case errors.Is(err, oauth.ErrNotConfigured):
		return http.StatusBadRequest, response.ErrorResp{
			Error:   "OAuth not configured",
			Message: "KEAP_CLIENT_ID and KEAP_CLIENT_SECRET environment variables are required",
		}
	case errors.Is(err, oauth.ErrDenied):
		return http.StatusBadRequest, response.ErrorResp{Error: "OAuth authorization failed", Details: err.Error()}
	case errors.Is(err, oauth.ErrMissingCode):
		return http.StatusBadRequest, response.ErrorResp{Error: "Missing authorization code"}
	case errors.Is(err, oauth.ErrInvalidState):
		return http.StatusBadRequest, response.ErrorResp{
			Error:      "Invalid OAuth state",
			Suggestion: "Start again from /oauth/authorize; the state expires after 10 minutes",
		}
	case errors.Is(err, oauth.ErrExchangeFailed):
		return http.StatusInternalServerError, response.ErrorResp{Error: "Token exchange failed", Details: err.Error()}
	case errors.Is(err, oauth.ErrRefreshFailed):
		return http.StatusInternalServerError, response.ErrorResp{Error: "Token refresh failed", Details: err.Error()}
	default:
		return http.StatusInternalServerError, response.ErrorResp{Error: response.MessageInternalError, Details: err.Error()}
	}
}

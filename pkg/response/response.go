package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the raw body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an optional example payload showing the expected input.
func BadRequest(c *gin.Context, msg string, example any) {
	c.JSON(http.StatusBadRequest, ErrorResp{
		Error:   msg,
		Example: example,
	})
}

// Error sends status with the error message and the underlying details.
func Error(c *gin.Context, status int, msg string, err error) {
	resp := ErrorResp{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}

// InternalError sends 500 with the error text as details.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, MessageInternalError, err)
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorResp{Error: msg})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorResp{Error: "rate limit exceeded"})
}

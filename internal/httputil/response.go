// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// ErrorResponse is the standardized error envelope carried by every non-2xx
// response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError writes the standardized JSON error envelope and aborts the
// request. The request ID is included when the request ID middleware has run.
func RespondError(c *gin.Context, status int, code, message string) {
	resp := ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: c.GetString("request_id"),
	}

	c.AbortWithStatusJSON(status, resp)
}

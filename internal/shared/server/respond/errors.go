package respond

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

// ErrorResponse is the flat error body returned by every endpoint.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, message string, details interface{}) {
	ErrorWithCode(c, status, message, details, "")
}

// ErrorWithCode sends an error response carrying an upstream error code.
func ErrorWithCode(c *gin.Context, status int, message string, details interface{}, code string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if code != "" {
		fields["code"] = code
	}
	if details != nil {
		fields["details"] = details
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Outcome is the uniform result of every reservation engine operation:
// a payload, a human-readable message and an HTTP-like status code. The
// engine is transport-agnostic; this package is the only place that
// knows how an Outcome is rendered on the wire.
type Outcome struct {
	Payload    any    `json:"payload"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func Ok(payload any, message string) Outcome {
	return Outcome{Payload: payload, Message: message, StatusCode: http.StatusOK}
}

func Fail(statusCode int, message string) Outcome {
	return Outcome{StatusCode: statusCode, Message: message}
}

// Succeeded reports whether the outcome carries a success status.
func (o Outcome) Succeeded() bool {
	return o.StatusCode >= 200 && o.StatusCode < 300
}

// Render writes the outcome in the service envelope.
func Render(c *gin.Context, o Outcome) {
	if o.Succeeded() {
		c.JSON(o.StatusCode, gin.H{
			"success": true,
			"message": o.Message,
			"data":    o.Payload,
		})
		return
	}
	Error(c, o.StatusCode, codeForStatus(o.StatusCode), o.Message)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Package envelope defines the JSON wrapper shared by every API response and
// the stable error codes carried in it. Handlers and middleware both write
// bodies through this package, so no layer builds its own shape.
package envelope

import (
	"github.com/gin-gonic/gin"
)

// Stable, machine-readable error codes.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
	CodeRateLimited      = "TOO_MANY_REQUESTS"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
)

// Envelope is the success response wrapper.
type Envelope struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	// Stable, machine-readable code (see the Code constants)
	Code string `json:"code" example:"NOT_FOUND"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"memo not found"`
	// Field -> violation, validation errors only
	Details map[string]string `json:"details,omitempty"`
}

// ErrorEnvelope is the error response wrapper.
type ErrorEnvelope struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// OK writes status with a success envelope around data.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Abort stops the handler chain and writes an error envelope.
func Abort(c *gin.Context, status int, code, msg string, details map[string]string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: ErrorBody{Code: code, Message: msg, Details: details},
	})
}

// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// mapError is the single place where a failure becomes an HTTP status, a
// stable code and a client-safe message. Handlers call respondError and never
// build error bodies themselves.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-memo-backend/internal/http/envelope"
	"github.com/tbourn/go-memo-backend/internal/services"
)

const (
	ErrCodeValidation  = envelope.CodeValidation
	ErrCodeBadRequest  = envelope.CodeBadRequest
	ErrCodeNotFound    = envelope.CodeNotFound
	ErrCodeInternal    = envelope.CodeInternal
	ErrCodeRateLimited = envelope.CodeRateLimited

	// Route-level:
	ErrCodeMethodNotAllowed = envelope.CodeMethodNotAllowed
	ErrCodeUnavailable      = envelope.CodeUnavailable
)

// mapError classifies err. Anything that is not a *services.Error is an
// internal error with a generic message.
func mapError(err error) (status int, code, msg string, details map[string]string) {
	var se *services.Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError, ErrCodeInternal, "internal server error", nil
	}
	switch se.Kind {
	case services.KindValidation:
		return http.StatusBadRequest, ErrCodeValidation, se.Message, se.Details
	case services.KindBadRequest:
		return http.StatusBadRequest, ErrCodeBadRequest, se.Message, nil
	case services.KindNotFound:
		return http.StatusNotFound, ErrCodeNotFound, se.Message, nil
	default:
		return http.StatusInternalServerError, ErrCodeInternal, se.Message, nil
	}
}

// respondError maps err and writes the error envelope.
func respondError(c *gin.Context, err error) {
	status, code, msg, details := mapError(err)
	fail(c, status, code, msg, details, err)
}

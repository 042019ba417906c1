// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response envelope shared by every endpoint. Each
// response is exactly one of two shapes:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "data": { "_id": "65f1c0ffee0ddba11ca7f00d", "title": "T", ... } }
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "success": false,
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "request validation failed",
//	    "details": { "title": "must not be empty" }
//	  }
//	}
//
// Conventions:
//   - `details` is only present on VALIDATION_ERROR responses.
//   - `fail()` centralizes error logging: client errors at info, server
//     errors at error, both through the request-scoped logger.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-memo-backend/internal/http/envelope"
	"github.com/tbourn/go-memo-backend/internal/http/middleware"
)

// Response shapes, re-exported for handler signatures and API docs.
type (
	Envelope      = envelope.Envelope
	ErrorBody     = envelope.ErrorBody
	ErrorEnvelope = envelope.ErrorEnvelope
)

// fail aborts the request with an error envelope and logs it.
func fail(c *gin.Context, status int, code, msg string, details map[string]string, cause error) {
	lg := middleware.LoggerFrom(c)
	var ev *zerolog.Event
	if status >= http.StatusInternalServerError {
		ev = lg.Error()
	} else {
		ev = lg.Info()
	}
	if cause != nil {
		ev = ev.Err(cause)
	}
	ev.Int("status", status).
		Str("code", code).
		Str("message", msg).
		Msg("api error")

	envelope.Abort(c, status, code, msg, details)
}

// Fail is the exported variant of fail() for route-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg, nil, nil) }

// ok writes a success envelope around data.
func ok(c *gin.Context, data any) {
	envelope.OK(c, http.StatusOK, data)
}

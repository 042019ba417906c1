package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the store driver.
type Pinger interface {
	Ping(ctx context.Context) error
}

// readyTimeout bounds the store ping performed by Ready.
const readyTimeout = 2 * time.Second

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.Envelope
// @Router      /health [get]
func Health(c *gin.Context) {
	ok(c, gin.H{"status": "ok"})
}

// Ready returns a readiness probe that pings the store.
//
// @ID          ready
// @Summary     Readiness probe
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.Envelope
// @Failure     503  {object}  handlers.ErrorEnvelope  "Store unreachable"
// @Router      /ready [get]
func Ready(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "store unavailable", nil, err)
			return
		}
		ok(c, gin.H{"status": "ready"})
	}
}

// Root answers the bare index route.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "hello world")
}

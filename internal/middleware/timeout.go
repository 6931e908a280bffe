package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
)

// DefaultRequestTimeout is used when TimeoutWithDuration gets a non-positive value.
const DefaultRequestTimeout = 30 * time.Second

// TimeoutWithDuration puts a deadline on the request context. Handlers run on
// the request goroutine and are expected to honour ctx; if the deadline passed
// and nothing was written, a 504 is returned.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			abortWithError(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
)

// RequireRole rejects callers whose claims lack role. It must run after
// Authenticate, APIKeyAuth or JWTAuth; a request without claims gets 401.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}
		if !claims.HasRole(role) {
			abortWithError(c, http.StatusForbidden, i18n.ErrKeyForbidden)
			return
		}
		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

const bearerPrefix = "Bearer "

// JWTAuth returns a middleware that requires a valid operator token in the
// Authorization header.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errKey := validateBearer(c, tokens)
		if errKey != "" {
			abortUnauthorized(c, errKey)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// validateBearer returns the token claims, or the i18n key describing why
// the header was rejected.
func validateBearer(c *gin.Context, tokens service.TokenService) (*dto.Claims, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, i18n.ErrKeyTokenRequired
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, i18n.ErrKeyInvalidToken
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if raw == "" {
		return nil, i18n.ErrKeyTokenRequired
	}

	claims, err := tokens.ValidateToken(c.Request.Context(), raw)
	if err != nil {
		return nil, i18n.ErrKeyInvalidToken
	}
	return claims, ""
}

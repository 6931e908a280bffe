package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"

	// OperatorKey holds the authenticated operator name in the gin context.
	OperatorKey = "operator"
	// ClaimsKey holds the caller's *dto.Claims in the gin context.
	ClaimsKey = "claims"

	// APIKeyOperator is the operator name recorded for API key callers.
	APIKeyOperator = "api-key"
)

// APIKeyAuth returns a middleware that accepts only requests carrying one of
// validKeys. API key holders act as operators. With no keys configured every
// request is rejected, so a misconfigured deployment fails closed.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !validKeys[key] {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		setIdentity(c, apiKeyClaims())
		c.Next()
	}
}

// Authenticate accepts either an API key or a bearer token. The API key is
// checked first; tokens may be nil when only keys are configured.
func Authenticate(validKeys map[string]bool, tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(APIKeyHeader); key != "" {
			if !validKeys[key] {
				abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
				return
			}
			setIdentity(c, apiKeyClaims())
			c.Next()
			return
		}

		if tokens == nil {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		claims, errKey := validateBearer(c, tokens)
		if errKey != "" {
			abortUnauthorized(c, errKey)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// GetOperator returns the authenticated operator, or "" for anonymous requests.
func GetOperator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}

// GetClaims returns the caller's claims, or nil for anonymous requests.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

func apiKeyClaims() *dto.Claims {
	return &dto.Claims{Subject: APIKeyOperator, Roles: []string{dto.RoleOperator}}
}

func setIdentity(c *gin.Context, claims *dto.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(OperatorKey, claims.Subject)
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	abortWithError(c, http.StatusUnauthorized, messageKey)
}

func abortWithError(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(GetRequestID(c)))
}

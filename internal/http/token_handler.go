package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/i18n"
	"github.com/guttosm/drone-fulfillment/internal/logger"
	"github.com/guttosm/drone-fulfillment/internal/middleware"
	"github.com/guttosm/drone-fulfillment/internal/service"
)

// TokenHandler exchanges an API key for a short lived operator token.
type TokenHandler struct {
	tokens service.TokenService
	now    func() time.Time
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens, now: time.Now}
}

// IssueToken handles POST /api/auth/token.
//
// @Summary      Issue an operator token
// @Description  Signs a JWT for the given subject and roles. Requires an API key.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.IssueTokenRequest true "Token subject and roles"
// @Success      201 {object} dto.SuccessResponse{data=dto.TokenResponse}
// @Failure      400 {object} dto.ErrorResponse "Missing subject or unknown role"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Token signing not configured"
// @Security     ApiKeyAuth
// @Router       /api/auth/token [post]
func (h *TokenHandler) IssueToken(c *gin.Context) {
	req, ok := bindRequest[dto.IssueTokenRequest](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	token, expiresAt, err := h.tokens.IssueToken(req.Subject, req.Roles)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrTokenSigningDisabled) {
			status = http.StatusServiceUnavailable
		}
		builder.Error(status, i18n.ErrKeyInternalError, err)
		return
	}

	log := logger.WithRequestID(middleware.GetRequestID(c))
	log.Info().
		Str("subject", req.Subject).
		Strs("roles", req.Roles).
		Time("expires_at", expiresAt).
		Msg("operator token issued")

	builder.SuccessCreated(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresAt.Sub(h.now()).Seconds()),
	}, i18n.SuccessKeyTokenIssued)
}

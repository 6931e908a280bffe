//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func identityRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), mw)
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"operator": GetOperator(c), "roles": GetClaims(c).Roles})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	keys := map[string]bool{"k-1": true}

	tests := []struct {
		name     string
		key      string
		wantCode int
		wantBody string
	}{
		{name: "missing key", wantCode: http.StatusUnauthorized, wantBody: "API key is required"},
		{name: "wrong key", key: "nope", wantCode: http.StatusUnauthorized, wantBody: "Invalid API key"},
		{name: "valid key", key: "k-1", wantCode: http.StatusOK, wantBody: `"operator":"api-key"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			identityRouter(APIKeyAuth(keys)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAPIKeyAuth_NoKeysConfiguredRejects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(APIKeyHeader, "anything")
	w := httptest.NewRecorder()
	identityRouter(APIKeyAuth(nil)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate(t *testing.T) {
	keys := map[string]bool{"k-1": true}
	tokens := new(mocks.MockTokenService)
	tokens.On("ValidateToken", mock.Anything, "good").
		Return(&dto.Claims{Subject: "alice", Roles: []string{dto.RoleViewer}}, nil)
	tokens.On("ValidateToken", mock.Anything, "bad").Return(nil, errors.New("invalid"))

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{name: "api key wins", headers: map[string]string{APIKeyHeader: "k-1", "Authorization": "Bearer bad"}, wantCode: http.StatusOK, wantBody: `"operator":"api-key"`},
		{name: "wrong api key", headers: map[string]string{APIKeyHeader: "x"}, wantCode: http.StatusUnauthorized, wantBody: "Invalid API key"},
		{name: "valid bearer", headers: map[string]string{"Authorization": "Bearer good"}, wantCode: http.StatusOK, wantBody: `"operator":"alice"`},
		{name: "invalid bearer", headers: map[string]string{"Authorization": "Bearer bad"}, wantCode: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "no credentials", wantCode: http.StatusUnauthorized, wantBody: "Authentication token is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			identityRouter(Authenticate(keys, tokens)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthenticate_WithoutTokenService(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()
	identityRouter(Authenticate(map[string]bool{"k": true}, nil)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestGetClaims_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
	assert.Empty(t, GetOperator(c))
}

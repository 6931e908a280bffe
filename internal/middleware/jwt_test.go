//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/guttosm/drone-fulfillment/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuth(t *testing.T) {
	tokens := service.NewTokenService(service.TokenConfig{SecretKey: "test-secret", Issuer: "drone-fulfillment", TTL: time.Hour})
	other := service.NewTokenService(service.TokenConfig{SecretKey: "other-secret", Issuer: "drone-fulfillment"})

	valid, _, err := tokens.IssueToken("bob", []string{dto.RoleOperator})
	require.NoError(t, err)
	foreign, _, err := other.IssueToken("mallory", []string{dto.RoleOperator})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized, wantBody: "Authentication token is required"},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "empty bearer", header: "Bearer   ", wantCode: http.StatusUnauthorized, wantBody: "Authentication token is required"},
		{name: "signed with another secret", header: "Bearer " + foreign, wantCode: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "valid token", header: "Bearer " + valid, wantCode: http.StatusOK, wantBody: `"operator":"bob"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			identityRouter(JWTAuth(tokens)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutWithDuration(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		handler  gin.HandlerFunc
		wantCode int
	}{
		{
			name:     "fast handler",
			timeout:  time.Second,
			handler:  func(c *gin.Context) { c.Status(http.StatusOK) },
			wantCode: http.StatusOK,
		},
		{
			name:    "handler waits on the deadline",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name:    "late handler that already responded keeps its response",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				c.JSON(http.StatusAccepted, gin.H{})
				<-c.Request.Context().Done()
			},
			wantCode: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), TimeoutWithDuration(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusGatewayTimeout {
				assert.Equal(t, dto.ErrCodeTimeout, decodeError(t, w).Error)
			}
		})
	}
}

func TestTimeoutWithDuration_DefaultsNonPositive(t *testing.T) {
	router := gin.New()
	router.Use(TimeoutWithDuration(0))
	router.GET("/test", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(DefaultRequestTimeout), deadline, time.Second)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

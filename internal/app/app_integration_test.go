//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Database = mongoConfig(t)

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, a.db)
	t.Cleanup(func() {
		_ = a.db.DB.Database.Drop(context.Background())
		a.Close()
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/readyz", "").Code)
	require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/restock", `{"restock":[{"product_id":7,"quantity":30}]}`).Code)
	require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/orders", `{"order_id":21,"requested":[{"product_id":7,"quantity":30}]}`).Code)

	// ledger writes go through the async dispatcher
	assert.Eventually(t, func() bool {
		w := do(http.MethodGet, "/api/orders/21/shipments", "")
		if w.Code != http.StatusOK {
			return false
		}
		var resp struct {
			Data []json.RawMessage `json:"data"`
		}
		return json.Unmarshal(w.Body.Bytes(), &resp) == nil && len(resp.Data) == 2
	}, 5*time.Second, 100*time.Millisecond)
}

//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apphttp "github.com/guttosm/drone-fulfillment/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(components *RouterComponents) *gin.Engine {
	return apphttp.NewRouter(components.Handler, components.HealthHandler, components.Config)
}

func TestInitializeApp(t *testing.T) {
	a, err := InitializeApp(testConfig())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.NotNil(t, a.Router)
	assert.True(t, a.Services.Fulfillment.CatalogLoaded())
	assert.Nil(t, a.backlogJob)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RBC A+ Adult")
}

func TestInitializeApp_OrderFlow(t *testing.T) {
	a, err := InitializeApp(testConfig())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, post("/api/restock", `{"restock":[{"product_id":0,"quantity":2},{"product_id":10,"quantity":3}]}`).Code)
	w := post("/api/orders", `{"order_id":1,"requested":[{"product_id":0,"quantity":2},{"product_id":10,"quantity":3}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining_capacity_g":100`)
	assert.Contains(t, w.Body.String(), `"remaining_capacity_g":1200`)
}

func TestInitializeApp_WithBacklogJob(t *testing.T) {
	cfg := testConfig()
	cfg.Fulfillment.BacklogReportSchedule = "*/30 * * * * *"

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.NotNil(t, a.backlogJob)
}

func TestInitializeApp_Errors(t *testing.T) {
	t.Run("bad catalog file", func(t *testing.T) {
		cfg := testConfig()
		cfg.Fulfillment.CatalogFile = "/nope/catalog.json"

		_, err := InitializeApp(cfg)
		assert.ErrorContains(t, err, "bootstrap catalog")
	})

	t.Run("bad schedule", func(t *testing.T) {
		cfg := testConfig()
		cfg.Fulfillment.BacklogReportSchedule = "whenever"

		_, err := InitializeApp(cfg)
		assert.Error(t, err)
	})
}

func TestApp_CloseIsSafeWithoutDatabase(t *testing.T) {
	a := &App{}
	assert.NotPanics(t, a.Close)
}

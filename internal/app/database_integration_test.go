//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mongoConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	ctx := context.Background()
	components := InitializeDatabase(mongoConfig(t))
	require.NotNil(t, components)
	t.Cleanup(func() {
		_ = components.DB.Database.Drop(ctx)
		components.Close(ctx)
	})

	assert.NotNil(t, components.LoggingService)
	assert.NotNil(t, components.Ledger)
	assert.NoError(t, components.DB.HealthCheck(ctx))

	notice := model.DispatchNotice{
		ShipmentID:   "c-1",
		OrderID:      11,
		Lines:        []model.NoticeLine{{ProductID: 0, ProductName: "RBC A+ Adult", Quantity: 2}},
		DispatchedAt: time.Now().UTC(),
	}
	require.NoError(t, components.Ledger.Record(ctx, notice))

	got, err := components.Ledger.ListByOrder(ctx, 11, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c-1", got[0].ShipmentID)
	assert.Equal(t, "closed", components.ShipmentsCircuitBreaker.GetStats().State)
}

func TestInitializeDatabase_UnreachableContinues(t *testing.T) {
	cfg := mongoConfig(t)
	cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"

	assert.Nil(t, InitializeDatabase(cfg))
}

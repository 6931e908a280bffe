//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/circuitbreaker"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/repository"
	"github.com/guttosm/drone-fulfillment/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMongo(t *testing.T) *repository.MongoDB {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoContainer.Cleanup(ctx) })

	db, err := repository.NewMongoDB(mongoContainer.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })
	return db
}

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupMongo(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	svc := NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb))

	require.NoError(t, svc.CreateLog(ctx, &model.LogEntry{
		Level: "info", Message: "catalog loaded", RequestID: "req-1", ActionType: model.ActionLoadCatalog, Operator: "api-key",
	}))
	require.NoError(t, svc.CreateLogs(ctx, []*model.LogEntry{
		{Level: "info", Message: "order processed", RequestID: "req-2", ActionType: model.ActionSubmitOrder},
		{Level: "error", Message: "order rejected", RequestID: "req-3", ActionType: model.ActionSubmitOrder},
	}))

	orders, err := svc.QueryLogs(ctx, model.LogQueryOptions{ActionType: model.ActionSubmitOrder})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	n, err := svc.CountLogs(ctx, model.LogQueryOptions{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	byRequest, err := svc.QueryLogs(ctx, model.LogQueryOptions{RequestID: "req-1"})
	require.NoError(t, err)
	require.Len(t, byRequest, 1)
	assert.Equal(t, "api-key", byRequest[0].Operator)
}

func TestShipmentLedger_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupMongo(t)
	ledger := NewShipmentLedger(repository.NewShipmentsRepository(db))

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"c-1", "c-2"} {
		require.NoError(t, ledger.Record(ctx, model.DispatchNotice{
			ShipmentID:   id,
			OrderID:      8,
			Lines:        []model.NoticeLine{{ProductID: 10, ProductName: "FFP A+", Quantity: i + 1}},
			DispatchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	notices, err := ledger.ListByOrder(ctx, 8, 10)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "FFP A+", notices[0].Lines[0].ProductName)

	none, err := ledger.ListByOrder(ctx, 99, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/drone-fulfillment/config"
	"github.com/guttosm/drone-fulfillment/internal/circuitbreaker"
	"github.com/guttosm/drone-fulfillment/internal/metrics"
	"github.com/guttosm/drone-fulfillment/internal/repository"
	"github.com/guttosm/drone-fulfillment/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	LoggingService          service.LoggingService
	Ledger                  service.ShipmentLedger
	ShipmentsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the ledger and request log
// services behind circuit breakers. Returns nil if the database is disabled
// or the connection fails; the warehouse itself works without it.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
		}
	}

	shipmentsCB := newCircuitBreaker(cfg, "mongodb-shipments")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	shipmentsRepo := repository.NewShipmentsRepositoryWithCircuitBreaker(repository.NewShipmentsRepository(db), shipmentsCB)

	return &DatabaseComponents{
		DB:                      db,
		LoggingService:          service.NewLoggingService(logsRepo),
		Ledger:                  service.NewShipmentLedger(shipmentsRepo),
		ShipmentsCircuitBreaker: shipmentsCB,
		LogsCircuitBreaker:      logsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

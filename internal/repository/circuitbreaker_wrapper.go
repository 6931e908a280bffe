package repository

import (
	"context"
	"errors"

	"github.com/guttosm/drone-fulfillment/internal/circuitbreaker"
)

// ShipmentsRepositoryWithCircuitBreaker guards the dispatch ledger with a circuit breaker.
type ShipmentsRepositoryWithCircuitBreaker struct {
	repo           ShipmentsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewShipmentsRepositoryWithCircuitBreaker wraps a shipments repository.
func NewShipmentsRepositoryWithCircuitBreaker(repo ShipmentsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ShipmentsRepositoryWithCircuitBreaker {
	return &ShipmentsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create records a shipment unless the circuit is open.
func (r *ShipmentsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *ShipmentDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// ListByOrder reads an order's shipments unless the circuit is open.
func (r *ShipmentsRepositoryWithCircuitBreaker) ListByOrder(ctx context.Context, orderID int, limit int) ([]ShipmentDocument, error) {
	var result []ShipmentDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByOrder(ctx, orderID, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health reporting.
func (r *ShipmentsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards the operations log with a circuit breaker.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps a logs repository.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a log entry. While the circuit is open entries are dropped
// silently; losing operations logs must not fail requests.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query reads log entries unless the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// CreateMany stores a batch of entries; an open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Count counts matching entries unless the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var count int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		count, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return count, err
}

// GetCircuitBreaker exposes the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

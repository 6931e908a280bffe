package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/logger"
)

// Dispatcher receives a notice for every shipment leaving the warehouse.
type Dispatcher interface {
	Dispatch(ctx context.Context, notice model.DispatchNotice) error
}

// LogDispatcher announces shipments on the structured log.
type LogDispatcher struct{}

// Dispatch writes "Order N has just been shipped" with one entry per line.
func (LogDispatcher) Dispatch(_ context.Context, notice model.DispatchNotice) error {
	contents := make([]string, 0, len(notice.Lines))
	for _, l := range notice.Lines {
		contents = append(contents, fmt.Sprintf("%d %s", l.Quantity, l.ProductName))
	}

	log := logger.Logger()
	log.Info().
		Int("order_id", notice.OrderID).
		Str("shipment_id", notice.ShipmentID).
		Str("request_id", notice.RequestID).
		Strs("contents", contents).
		Msgf("Order %d has just been shipped", notice.OrderID)
	return nil
}

// LedgerDispatcher records shipments in the dispatch ledger.
type LedgerDispatcher struct {
	ledger ShipmentLedger
}

// NewLedgerDispatcher creates a dispatcher backed by a ShipmentLedger.
func NewLedgerDispatcher(ledger ShipmentLedger) *LedgerDispatcher {
	return &LedgerDispatcher{ledger: ledger}
}

// Dispatch stores the notice in the ledger.
func (d *LedgerDispatcher) Dispatch(ctx context.Context, notice model.DispatchNotice) error {
	return d.ledger.Record(ctx, notice)
}

// MultiDispatcher fans a notice out to several dispatchers.
// Every dispatcher is called even when an earlier one fails.
type MultiDispatcher []Dispatcher

// Dispatch calls each dispatcher in order and joins their errors.
func (m MultiDispatcher) Dispatch(ctx context.Context, notice model.DispatchNotice) error {
	var errs []error
	for _, d := range m {
		if d == nil {
			continue
		}
		if err := d.Dispatch(ctx, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

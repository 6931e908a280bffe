// Package service contains the business logic for the drone fulfillment service.
package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/logger"
	"github.com/guttosm/drone-fulfillment/internal/metrics"
)

// FulfillmentManager defines the warehouse operations exposed to transports.
type FulfillmentManager interface {
	LoadCatalog(ctx context.Context, entries []model.CatalogEntry) error
	Restock(ctx context.Context, deltas []model.ProductDelta) (*model.RestockReport, error)
	ProcessOrder(ctx context.Context, order model.Order) (*model.OrderResult, error)
	Inventory() []model.ProductRecord
	Product(productID int) (model.ProductRecord, error)
	Backlog() []model.BacklogFragment
	BacklogStats() (fragments, units int)
}

// FulfillmentOption configures a FulfillmentService.
type FulfillmentOption func(*FulfillmentService)

// FulfillmentService owns one warehouse: its inventory, backlog and packer.
//
// All state changes happen under a single writer lock, so a restock is fully
// applied before the backlog is re-driven and every line is resolved before it
// is packed. Dispatch runs after the lock is released.
type FulfillmentService struct {
	mu            sync.Mutex
	store         *InventoryStore
	backlog       *BacklogQueue
	packer        *ContainerPacker
	dispatcher    Dispatcher
	strictRestock bool
	now           func() time.Time
}

// NewFulfillmentService creates a service with an empty store and backlog.
func NewFulfillmentService(opts ...FulfillmentOption) *FulfillmentService {
	s := &FulfillmentService{
		store:      NewInventoryStore(),
		backlog:    NewBacklogQueue(),
		packer:     NewContainerPacker(model.DefaultCapacityG),
		dispatcher: LogDispatcher{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPacker replaces the container packer.
func WithPacker(p *ContainerPacker) FulfillmentOption {
	return func(s *FulfillmentService) {
		if p != nil {
			s.packer = p
		}
	}
}

// WithCapacity sets the drone capacity in grams.
func WithCapacity(capacityG int) FulfillmentOption {
	return func(s *FulfillmentService) {
		s.packer = NewContainerPacker(capacityG)
	}
}

// WithDispatcher sets the collaborator that receives shipment notices.
func WithDispatcher(d Dispatcher) FulfillmentOption {
	return func(s *FulfillmentService) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

// WithStrictRestock makes any unknown product reject the whole restock batch.
func WithStrictRestock(strict bool) FulfillmentOption {
	return func(s *FulfillmentService) {
		s.strictRestock = strict
	}
}

// WithClock overrides the time source used for dispatch timestamps.
func WithClock(now func() time.Time) FulfillmentOption {
	return func(s *FulfillmentService) {
		if now != nil {
			s.now = now
		}
	}
}

// LoadCatalog initializes the inventory with zero stock per product.
func (s *FulfillmentService) LoadCatalog(_ context.Context, entries []model.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Initialize(entries); err != nil {
		return err
	}

	log := logger.Logger()
	log.Info().Int("products", len(entries)).Msg("Catalog loaded")
	return nil
}

// ProcessOrder fulfills what it can, defers the rest to the backlog and
// dispatches one notice per container.
func (s *FulfillmentService) ProcessOrder(ctx context.Context, order model.Order) (*model.OrderResult, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	start := time.Now()

	s.mu.Lock()
	if !s.store.Loaded() {
		s.mu.Unlock()
		return nil, ErrCatalogNotLoaded
	}
	result, notices := s.processLocked(ctx, order)
	s.recordBacklog()
	s.mu.Unlock()

	recordOrder(result, time.Since(start))
	s.dispatch(ctx, notices)
	return result, nil
}

// Restock adds stock and then re-drives every queued backlog fragment in FIFO
// order. The queue is drained first; only the still-unmet remainder of each
// fragment is queued again.
//
// An error is returned only when nothing was applied. Per-item failures of a
// partially applied batch are listed in the report.
func (s *FulfillmentService) Restock(ctx context.Context, deltas []model.ProductDelta) (*model.RestockReport, error) {
	if len(deltas) == 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	if !s.store.Loaded() {
		s.mu.Unlock()
		metrics.RecordRestock("rejected")
		return nil, ErrCatalogNotLoaded
	}

	applied, err := s.store.Restock(deltas, s.strictRestock)
	if len(applied) == 0 {
		s.mu.Unlock()
		metrics.RecordRestock("rejected")
		return nil, err
	}

	report := &model.RestockReport{Applied: applied, Failed: restockFailures(err)}

	var notices []model.DispatchNotice
	for _, fragment := range s.backlog.Drain() {
		start := time.Now()
		result, n := s.processLocked(ctx, fragment.AsOrder())
		recordOrder(result, time.Since(start))
		report.Redriven = append(report.Redriven, *result)
		notices = append(notices, n...)
	}
	report.Backlog = s.backlog.Len()
	s.recordBacklog()
	s.mu.Unlock()

	status := "applied"
	if len(report.Failed) > 0 {
		status = "partial"
	}
	metrics.RecordRestock(status)

	log := logger.Logger()
	log.Info().
		Int("applied", len(report.Applied)).
		Int("failed", len(report.Failed)).
		Int("redriven", len(report.Redriven)).
		Int("backlog_remaining", report.Backlog).
		Msg("Restock processed")

	s.dispatch(ctx, notices)
	return report, nil
}

// CatalogLoaded reports whether LoadCatalog has succeeded.
func (s *FulfillmentService) CatalogLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Loaded()
}

// Inventory returns every product record ordered by id.
func (s *FulfillmentService) Inventory() []model.ProductRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Product returns one product record.
func (s *FulfillmentService) Product(productID int) (model.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Lookup(productID)
}

// Backlog returns the queued fragments, oldest first.
func (s *FulfillmentService) Backlog() []model.BacklogFragment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backlog.Snapshot()
}

// BacklogStats returns the number of queued fragments and deferred units.
func (s *FulfillmentService) BacklogStats() (fragments, units int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backlog.Len(), s.backlog.DeferredUnits()
}

// processLocked runs sort, resolve, pack and finalize for one order.
// Callers must hold s.mu.
func (s *FulfillmentService) processLocked(ctx context.Context, order model.Order) (*model.OrderResult, []model.DispatchNotice) {
	lines := s.sortByMass(order.Requested)

	result := &model.OrderResult{
		OrderID: order.OrderID,
		Lines:   make([]model.LineOutcome, 0, len(lines)),
	}
	fragment := model.BacklogFragment{OrderID: order.OrderID}
	fulfillable := make([]model.OrderLine, 0, len(lines))

	for _, line := range lines {
		ready, deferred := Resolve(line, s.store)
		result.Lines = append(result.Lines, model.LineOutcome{
			ProductID: line.ProductID,
			Requested: line.Quantity,
			Fulfilled: ready.Quantity,
			Deferred:  deferred,
		})
		if deferred > 0 {
			fragment.Requested = append(fragment.Requested, model.OrderLine{
				ProductID: line.ProductID,
				Quantity:  deferred,
			})
		}
		fulfillable = append(fulfillable, ready)
	}

	if !fragment.IsEmpty() {
		s.backlog.Append(fragment)
		result.Backlog = &fragment
	}

	var containers []*model.Container
	for _, line := range fulfillable {
		if line.Quantity == 0 {
			continue
		}
		// Known product: the resolver only fulfills lines it could look up.
		rec, err := s.store.Lookup(line.ProductID)
		if err != nil {
			continue
		}
		var warnings []model.Warning
		containers, warnings = s.packer.Pack(order.OrderID, line, rec.MassG, containers)
		for _, w := range warnings {
			log := logger.Logger()
			log.Warn().
				Int("order_id", order.OrderID).
				Int("product_id", w.ProductID).
				Int("capacity_g", s.packer.CapacityG()).
				Msg(w.Message)
			metrics.RecordOversizedUnits(line.Quantity)
		}
		result.Warnings = append(result.Warnings, warnings...)
	}
	result.Containers = containers

	requestID := RequestIDFromContext(ctx)
	result.Shipments = make([]model.Shipment, 0, len(containers))
	notices := make([]model.DispatchNotice, 0, len(containers))
	for _, c := range containers {
		shipment := c.ToShipment()
		result.Shipments = append(result.Shipments, shipment)
		notices = append(notices, s.buildNotice(shipment, requestID))
	}

	return result, notices
}

// sortByMass returns a copy of lines ordered by descending unit mass.
// Ties keep their request order; unknown products go last.
func (s *FulfillmentService) sortByMass(requested []model.OrderLine) []model.OrderLine {
	lines := make([]model.OrderLine, len(requested))
	copy(lines, requested)

	mass := func(productID int) int {
		rec, err := s.store.Lookup(productID)
		if err != nil {
			return 0
		}
		return rec.MassG
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return mass(lines[i].ProductID) > mass(lines[j].ProductID)
	})
	return lines
}

// buildNotice resolves product names for a shipment. A line whose product
// cannot be looked up is logged and left out of the notice.
func (s *FulfillmentService) buildNotice(shipment model.Shipment, requestID string) model.DispatchNotice {
	notice := model.DispatchNotice{
		ShipmentID:   shipment.ID,
		OrderID:      shipment.OrderID,
		Lines:        make([]model.NoticeLine, 0, len(shipment.Shipped)),
		RequestID:    requestID,
		DispatchedAt: s.now(),
	}
	for _, line := range shipment.Shipped {
		rec, err := s.store.Lookup(line.ProductID)
		if err != nil {
			log := logger.Logger()
			log.Error().
				Err(err).
				Int("order_id", shipment.OrderID).
				Str("shipment_id", shipment.ID).
				Msg("Dispatch lookup failed")
			continue
		}
		notice.Lines = append(notice.Lines, model.NoticeLine{
			ProductID:   line.ProductID,
			ProductName: rec.ProductName,
			Quantity:    line.Quantity,
		})
	}
	return notice
}

func (s *FulfillmentService) dispatch(ctx context.Context, notices []model.DispatchNotice) {
	for _, notice := range notices {
		if err := s.dispatcher.Dispatch(ctx, notice); err != nil {
			log := logger.Logger()
			log.Error().
				Err(err).
				Int("order_id", notice.OrderID).
				Str("shipment_id", notice.ShipmentID).
				Msg("Shipment dispatch failed")
			metrics.RecordDispatch("error")
			continue
		}
		metrics.RecordDispatch("success")
	}
}

// recordBacklog refreshes the backlog gauges. Callers must hold s.mu.
func (s *FulfillmentService) recordBacklog() {
	metrics.SetBacklogDepth(s.backlog.Len(), s.backlog.DeferredUnits())
}

func recordOrder(result *model.OrderResult, duration time.Duration) {
	fulfilled, deferred := result.FulfilledUnits(), result.DeferredUnits()
	outcome := "partial"
	switch {
	case deferred == 0:
		outcome = "fulfilled"
	case fulfilled == 0:
		outcome = "deferred"
	}
	metrics.RecordOrderProcessed(duration, outcome)
	metrics.RecordUnits(fulfilled, deferred)
	metrics.RecordContainersOpened(len(result.Containers))
}

func validateOrder(order model.Order) error {
	if len(order.Requested) == 0 {
		return ErrEmptyOrder
	}
	for _, line := range order.Requested {
		if line.Quantity <= 0 || line.Quantity > model.MaxLineQuantity {
			return productErr(line.ProductID, ErrInvalidQuantity)
		}
	}
	return nil
}

// restockFailures flattens a joined restock error into per-item failures.
func restockFailures(err error) []model.RestockFailure {
	if err == nil {
		return nil
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	failures := make([]model.RestockFailure, 0, len(errs))
	for _, e := range errs {
		var pe *ProductError
		if errors.As(e, &pe) {
			failures = append(failures, model.RestockFailure{ProductID: pe.ProductID, Error: pe.Err.Error()})
		}
	}
	return failures
}

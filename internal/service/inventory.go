package service

import (
	"errors"
	"math"
	"sort"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
)

// InventoryStore maps product ids to catalog records and on-hand stock.
//
// The store is not safe for concurrent use; FulfillmentService serializes
// every access through its writer lock.
type InventoryStore struct {
	records map[int]*model.ProductRecord
	loaded  bool
}

// NewInventoryStore creates an empty store. Call Initialize before use.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{records: make(map[int]*model.ProductRecord)}
}

// Initialize loads the catalog with zero stock for every product.
// The whole catalog is validated before any record is stored.
func (s *InventoryStore) Initialize(entries []model.CatalogEntry) error {
	if s.loaded {
		return ErrCatalogAlreadyLoaded
	}

	seen := make(map[int]struct{}, len(entries))
	var errs []error
	for _, e := range entries {
		if _, dup := seen[e.ProductID]; dup {
			errs = append(errs, productErr(e.ProductID, ErrDuplicateProduct))
			continue
		}
		seen[e.ProductID] = struct{}{}
		if e.MassG <= 0 {
			errs = append(errs, productErr(e.ProductID, ErrInvalidMass))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, e := range entries {
		s.records[e.ProductID] = &model.ProductRecord{
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			MassG:       e.MassG,
			Quantity:    0,
		}
	}
	s.loaded = true
	return nil
}

// Loaded reports whether the catalog has been initialized.
func (s *InventoryStore) Loaded() bool {
	return s.loaded
}

// Restock adds stock for each delta and returns the deltas that were applied.
//
// Non-positive quantities, and deltas that would overflow on-hand stock,
// reject the whole batch before anything changes.
// Unknown products fail individually while known siblings are still applied,
// unless strict is set, in which case any unknown product rejects the batch.
func (s *InventoryStore) Restock(deltas []model.ProductDelta, strict bool) ([]model.ProductDelta, error) {
	pending := make(map[int]int, len(deltas))
	for _, d := range deltas {
		if d.Quantity <= 0 {
			return nil, productErr(d.ProductID, ErrInvalidQuantity)
		}
		rec, ok := s.records[d.ProductID]
		if !ok {
			continue
		}
		if d.Quantity > math.MaxInt-rec.Quantity-pending[d.ProductID] {
			return nil, productErr(d.ProductID, ErrInvalidQuantity)
		}
		pending[d.ProductID] += d.Quantity
	}

	var errs []error
	for _, d := range deltas {
		if _, ok := s.records[d.ProductID]; !ok {
			errs = append(errs, productErr(d.ProductID, ErrUnknownProduct))
		}
	}
	if strict && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	applied := make([]model.ProductDelta, 0, len(deltas))
	for _, d := range deltas {
		rec, ok := s.records[d.ProductID]
		if !ok {
			continue
		}
		rec.Quantity += d.Quantity
		applied = append(applied, d)
	}
	return applied, errors.Join(errs...)
}

// Lookup returns a copy of the record for a product.
func (s *InventoryStore) Lookup(productID int) (model.ProductRecord, error) {
	rec, ok := s.records[productID]
	if !ok {
		return model.ProductRecord{}, productErr(productID, ErrUnknownProduct)
	}
	return *rec, nil
}

// Snapshot returns copies of all records ordered by product id.
func (s *InventoryStore) Snapshot() []model.ProductRecord {
	out := make([]model.ProductRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// withdraw removes up to n units of a product and returns how many were taken.
func (s *InventoryStore) withdraw(productID, n int) int {
	rec, ok := s.records[productID]
	if !ok || n <= 0 {
		return 0
	}
	if n > rec.Quantity {
		n = rec.Quantity
	}
	rec.Quantity -= n
	return n
}

//go:build !integration

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
)

// recordingDispatcher keeps every notice it receives.
type recordingDispatcher struct {
	mu      sync.Mutex
	notices []model.DispatchNotice
	err     error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, notice model.DispatchNotice) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, notice)
	return d.err
}

func (d *recordingDispatcher) received() []model.DispatchNotice {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.DispatchNotice(nil), d.notices...)
}

// sequentialIDs yields c-1, c-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c-%d", n)
	}
}

func testCatalog() []model.CatalogEntry {
	return []model.CatalogEntry{
		{ProductID: 0, ProductName: "RBC A+ Adult", MassG: 700},
		{ProductID: 1, ProductName: "RBC B+ Adult", MassG: 700},
		{ProductID: 7, ProductName: "PLT O+", MassG: 80},
		{ProductID: 10, ProductName: "FFP A+", MassG: 300},
		{ProductID: 42, ProductName: "Oversized Kit", MassG: 2000},
	}
}

func newTestService(opts ...FulfillmentOption) (*FulfillmentService, *recordingDispatcher) {
	d := &recordingDispatcher{}
	base := []FulfillmentOption{
		WithDispatcher(d),
		WithPacker(NewContainerPacker(model.DefaultCapacityG, WithContainerIDs(sequentialIDs()))),
	}
	return NewFulfillmentService(append(base, opts...)...), d
}

func quantityOf(records []model.ProductRecord, productID int) int {
	for _, r := range records {
		if r.ProductID == productID {
			return r.Quantity
		}
	}
	return -1
}

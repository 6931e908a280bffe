// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockFulfillmentManager struct {
	mock.Mock
}

func (m *MockFulfillmentManager) LoadCatalog(ctx context.Context, entries []model.CatalogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockFulfillmentManager) Restock(ctx context.Context, deltas []model.ProductDelta) (*model.RestockReport, error) {
	args := m.Called(ctx, deltas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RestockReport), args.Error(1)
}

func (m *MockFulfillmentManager) ProcessOrder(ctx context.Context, order model.Order) (*model.OrderResult, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResult), args.Error(1)
}

func (m *MockFulfillmentManager) Inventory() []model.ProductRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ProductRecord)
}

func (m *MockFulfillmentManager) Product(productID int) (model.ProductRecord, error) {
	args := m.Called(productID)
	return args.Get(0).(model.ProductRecord), args.Error(1)
}

func (m *MockFulfillmentManager) Backlog() []model.BacklogFragment {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.BacklogFragment)
}

func (m *MockFulfillmentManager) BacklogStats() (int, int) {
	args := m.Called()
	return args.Int(0), args.Int(1)
}

// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/drone-fulfillment/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockShipmentsRepositoryInterface struct {
	mock.Mock
}

func (m *MockShipmentsRepositoryInterface) Create(ctx context.Context, doc *repository.ShipmentDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockShipmentsRepositoryInterface) ListByOrder(ctx context.Context, orderID int, limit int) ([]repository.ShipmentDocument, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShipmentDocument), args.Error(1)
}

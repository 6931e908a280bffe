// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockShipmentLedger struct {
	mock.Mock
}

func (m *MockShipmentLedger) Record(ctx context.Context, notice model.DispatchNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockShipmentLedger) ListByOrder(ctx context.Context, orderID int, limit int) ([]model.DispatchNotice, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DispatchNotice), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, notice model.DispatchNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

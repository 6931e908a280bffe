//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testNotice() model.DispatchNotice {
	return model.DispatchNotice{
		ShipmentID: "c-1",
		OrderID:    1,
		Lines: []model.NoticeLine{
			{ProductID: 0, ProductName: "RBC A+ Adult", Quantity: 2},
			{ProductID: 10, ProductName: "FFP A+", Quantity: 1},
		},
	}
}

func TestLogDispatcher(t *testing.T) {
	assert.NoError(t, LogDispatcher{}.Dispatch(context.Background(), testNotice()))
}

func TestLedgerDispatcher(t *testing.T) {
	ledger := new(mocks.MockShipmentLedger)
	ledger.On("Record", mock.Anything, testNotice()).Return(nil).Once()
	ledger.On("Record", mock.Anything, mock.Anything).Return(ErrLedgerUnavailable)

	d := NewLedgerDispatcher(ledger)
	assert.NoError(t, d.Dispatch(context.Background(), testNotice()))
	assert.ErrorIs(t, d.Dispatch(context.Background(), model.DispatchNotice{ShipmentID: "c-2"}), ErrLedgerUnavailable)
	ledger.AssertExpectations(t)
}

func TestMultiDispatcher(t *testing.T) {
	first := new(mocks.MockDispatcher)
	second := new(mocks.MockDispatcher)
	third := new(mocks.MockDispatcher)

	errFirst := errors.New("first failed")
	errThird := errors.New("third failed")
	first.On("Dispatch", mock.Anything, testNotice()).Return(errFirst)
	second.On("Dispatch", mock.Anything, testNotice()).Return(nil)
	third.On("Dispatch", mock.Anything, testNotice()).Return(errThird)

	err := MultiDispatcher{first, nil, second, third}.Dispatch(context.Background(), testNotice())

	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
	third.AssertExpectations(t)

	assert.NoError(t, MultiDispatcher{}.Dispatch(context.Background(), testNotice()))
}

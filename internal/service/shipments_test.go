//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/mocks"
	"github.com/guttosm/drone-fulfillment/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipmentLedger_Record(t *testing.T) {
	repo := new(mocks.MockShipmentsRepositoryInterface)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.ShipmentDocument) bool {
		return doc.ShipmentID == "c-1" && doc.OrderID == 1 && len(doc.Lines) == 2 &&
			doc.Lines[1].ProductName == "FFP A+" && doc.Lines[1].Quantity == 1
	})).Return(nil)

	require.NoError(t, NewShipmentLedger(repo).Record(context.Background(), testNotice()))
	repo.AssertExpectations(t)
}

func TestShipmentLedger_ListByOrder(t *testing.T) {
	dispatchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		docs      []repository.ShipmentDocument
		repoErr   error
		wantCount int
		wantErr   bool
	}{
		{
			name: "maps documents",
			docs: []repository.ShipmentDocument{{
				ShipmentID:   "c-1",
				OrderID:      1,
				Lines:        []repository.ShipmentLineDocument{{ProductID: 10, ProductName: "FFP A+", Quantity: 2}},
				RequestID:    "req-1",
				DispatchedAt: dispatchedAt,
			}},
			wantCount: 1,
		},
		{name: "no shipments", docs: []repository.ShipmentDocument{}},
		{name: "repository error", repoErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockShipmentsRepositoryInterface)
			if tt.repoErr != nil {
				repo.On("ListByOrder", mock.Anything, 1, 20).Return(nil, tt.repoErr)
			} else {
				repo.On("ListByOrder", mock.Anything, 1, 20).Return(tt.docs, nil)
			}

			notices, err := NewShipmentLedger(repo).ListByOrder(context.Background(), 1, 20)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, notices, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, "req-1", notices[0].RequestID)
				assert.Equal(t, dispatchedAt, notices[0].DispatchedAt)
				assert.Equal(t, "FFP A+", notices[0].Lines[0].ProductName)
			}
		})
	}
}

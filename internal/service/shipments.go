package service

import (
	"context"
	"errors"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/repository"
)

// ErrLedgerUnavailable is returned when shipments are queried without a ledger.
var ErrLedgerUnavailable = errors.New("dispatch ledger unavailable")

// ShipmentLedger keeps a durable record of dispatched shipments.
type ShipmentLedger interface {
	Record(ctx context.Context, notice model.DispatchNotice) error
	ListByOrder(ctx context.Context, orderID int, limit int) ([]model.DispatchNotice, error)
}

// ShipmentLedgerImpl implements ShipmentLedger over a shipments repository.
type ShipmentLedgerImpl struct {
	repo repository.ShipmentsRepositoryInterface
}

// NewShipmentLedger creates a ledger backed by repo.
func NewShipmentLedger(repo repository.ShipmentsRepositoryInterface) ShipmentLedger {
	return &ShipmentLedgerImpl{repo: repo}
}

// Record stores one dispatch notice.
func (l *ShipmentLedgerImpl) Record(ctx context.Context, notice model.DispatchNotice) error {
	doc := &repository.ShipmentDocument{
		ShipmentID:   notice.ShipmentID,
		OrderID:      notice.OrderID,
		Lines:        make([]repository.ShipmentLineDocument, len(notice.Lines)),
		RequestID:    notice.RequestID,
		DispatchedAt: notice.DispatchedAt,
	}
	for i, line := range notice.Lines {
		doc.Lines[i] = repository.ShipmentLineDocument{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		}
	}
	return l.repo.Create(ctx, doc)
}

// ListByOrder returns an order's notices in dispatch order.
func (l *ShipmentLedgerImpl) ListByOrder(ctx context.Context, orderID int, limit int) ([]model.DispatchNotice, error) {
	docs, err := l.repo.ListByOrder(ctx, orderID, limit)
	if err != nil {
		return nil, err
	}

	notices := make([]model.DispatchNotice, len(docs))
	for i, doc := range docs {
		notice := model.DispatchNotice{
			ShipmentID:   doc.ShipmentID,
			OrderID:      doc.OrderID,
			Lines:        make([]model.NoticeLine, len(doc.Lines)),
			RequestID:    doc.RequestID,
			DispatchedAt: doc.DispatchedAt,
		}
		for j, line := range doc.Lines {
			notice.Lines[j] = model.NoticeLine{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
			}
		}
		notices[i] = notice
	}
	return notices, nil
}

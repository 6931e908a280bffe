package repository

import "context"

// LogsRepositoryInterface defines the operations log store.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// ShipmentsRepositoryInterface defines the dispatch ledger store.
type ShipmentsRepositoryInterface interface {
	Create(ctx context.Context, doc *ShipmentDocument) error
	ListByOrder(ctx context.Context, orderID int, limit int) ([]ShipmentDocument, error)
}

package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShipmentLineDocument is one shipped product line.
type ShipmentLineDocument struct {
	ProductID   int    `bson:"product_id"`
	ProductName string `bson:"product_name"`
	Quantity    int    `bson:"quantity"`
}

// ShipmentDocument is a dispatched shipment in the ledger.
type ShipmentDocument struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty"`
	ShipmentID   string                 `bson:"shipment_id"`
	OrderID      int                    `bson:"order_id"`
	Lines        []ShipmentLineDocument `bson:"lines"`
	RequestID    string                 `bson:"request_id,omitempty"`
	DispatchedAt time.Time              `bson:"dispatched_at"`
}

// ShipmentsRepository stores dispatched shipments.
type ShipmentsRepository struct {
	collection *mongo.Collection
}

// NewShipmentsRepository creates a new shipments repository.
func NewShipmentsRepository(db *MongoDB) *ShipmentsRepository {
	return &ShipmentsRepository{collection: db.Shipments}
}

// Create inserts a shipment document.
func (r *ShipmentsRepository) Create(ctx context.Context, doc *ShipmentDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.DispatchedAt.IsZero() {
		doc.DispatchedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// ListByOrder returns an order's shipments in dispatch order.
func (r *ShipmentsRepository) ListByOrder(ctx context.Context, orderID int, limit int) ([]ShipmentDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dispatched_at", Value: 1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"order_id": orderID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []ShipmentDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

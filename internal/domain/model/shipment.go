package model

import "time"

// ShippedLine is one product line of a shipment.
type ShippedLine struct {
	ProductID int `json:"product_id" bson:"product_id"`
	Quantity  int `json:"quantity" bson:"quantity"`
}

// Shipment is the dispatch-ready projection of a finished container.
type Shipment struct {
	ID      string        `json:"id"`
	OrderID int           `json:"order_id"`
	Shipped []ShippedLine `json:"shipped"`
}

// NoticeLine is a shipped line with its product name resolved.
type NoticeLine struct {
	ProductID   int    `json:"product_id" bson:"product_id"`
	ProductName string `json:"product_name" bson:"product_name"`
	Quantity    int    `json:"quantity" bson:"quantity"`
}

// DispatchNotice is handed to the dispatch collaborator for every shipment.
type DispatchNotice struct {
	ShipmentID   string       `json:"shipment_id" bson:"shipment_id"`
	OrderID      int          `json:"order_id" bson:"order_id"`
	Lines        []NoticeLine `json:"lines" bson:"lines"`
	RequestID    string       `json:"request_id,omitempty" bson:"request_id,omitempty"`
	DispatchedAt time.Time    `json:"dispatched_at" bson:"dispatched_at"`
}

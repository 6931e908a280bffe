package model

// MaxLineQuantity bounds the quantity of a single restock or order line.
const MaxLineQuantity = 100_000

// OrderLine is a requested (or fulfillable) quantity of one product.
type OrderLine struct {
	ProductID int `json:"product_id" bson:"product_id" example:"0"`
	Quantity  int `json:"quantity" bson:"quantity" example:"2"`
}

// Order is a hospital order. Processing never mutates the caller's Requested slice.
type Order struct {
	OrderID   int         `json:"order_id" example:"123"`
	Requested []OrderLine `json:"requested"`
}

// TotalUnits returns the sum of requested quantities.
func (o Order) TotalUnits() int {
	total := 0
	for _, line := range o.Requested {
		total += line.Quantity
	}
	return total
}

// BacklogFragment holds the unmet part of an order waiting for stock.
// Several fragments may exist for the same order.
type BacklogFragment struct {
	OrderID   int         `json:"order_id" example:"123"`
	Requested []OrderLine `json:"requested"`
}

// IsEmpty reports whether the fragment carries no unmet lines.
func (f BacklogFragment) IsEmpty() bool {
	return len(f.Requested) == 0
}

// AsOrder turns the fragment into an order so it can be re-processed.
func (f BacklogFragment) AsOrder() Order {
	lines := make([]OrderLine, len(f.Requested))
	copy(lines, f.Requested)
	return Order{OrderID: f.OrderID, Requested: lines}
}

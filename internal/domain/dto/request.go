// Package dto defines the HTTP request and response bodies.
package dto

import (
	"fmt"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns "field: message".
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CatalogProduct is one product in a catalog load.
type CatalogProduct struct {
	// ProductID is required; zero is a valid id.
	ProductID   *int   `json:"product_id" example:"0"`
	ProductName string `json:"product_name" example:"RBC A+ Adult"`
	MassG       int    `json:"mass_g" example:"700"`
} // @name CatalogProduct

// LoadCatalogRequest is the body of POST /api/catalog.
//
// @Description Catalog to load; every product starts with zero stock
type LoadCatalogRequest struct {
	Products []CatalogProduct `json:"products" binding:"required,min=1"`
} // @name LoadCatalogRequest

// Validate checks every product. Duplicate ids are left to the inventory store.
func (r *LoadCatalogRequest) Validate() error {
	if len(r.Products) == 0 {
		return fieldError("products", "must contain at least one product")
	}
	for i, p := range r.Products {
		prefix := fmt.Sprintf("products[%d]", i)
		if p.ProductID == nil {
			return fieldError(prefix+".product_id", "is required")
		}
		if *p.ProductID < 0 {
			return fieldError(prefix+".product_id", "must not be negative")
		}
		if p.ProductName == "" {
			return fieldError(prefix+".product_name", "is required")
		}
		if p.MassG <= 0 {
			return fieldError(prefix+".mass_g", "must be a positive integer")
		}
	}
	return nil
}

// ToEntries converts a validated request into catalog entries.
func (r *LoadCatalogRequest) ToEntries() []model.CatalogEntry {
	entries := make([]model.CatalogEntry, len(r.Products))
	for i, p := range r.Products {
		entries[i] = model.CatalogEntry{ProductID: *p.ProductID, ProductName: p.ProductName, MassG: p.MassG}
	}
	return entries
}

// ProductQuantity is a product id with a quantity, used by restock and orders.
type ProductQuantity struct {
	ProductID *int `json:"product_id" example:"10"`
	Quantity  int  `json:"quantity" minimum:"1" maximum:"100000" example:"4"`
} // @name ProductQuantity

func validateLines(field string, lines []ProductQuantity) error {
	if len(lines) == 0 {
		return fieldError(field, "must contain at least one item")
	}
	for i, l := range lines {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if l.ProductID == nil {
			return fieldError(prefix+".product_id", "is required")
		}
		if l.Quantity <= 0 {
			return fieldError(prefix+".quantity", "must be a positive integer")
		}
		if l.Quantity > model.MaxLineQuantity {
			return fieldError(prefix+".quantity", fmt.Sprintf("must not exceed %d", model.MaxLineQuantity))
		}
	}
	return nil
}

// RestockRequest is the body of POST /api/restock.
//
// @Description Stock arriving at the warehouse
// @Example {"restock": [{"product_id": 0, "quantity": 30}, {"product_id": 10, "quantity": 3}]}
type RestockRequest struct {
	Restock []ProductQuantity `json:"restock" binding:"required"`
} // @name RestockRequest

// Validate requires at least one item with a positive quantity.
func (r *RestockRequest) Validate() error {
	return validateLines("restock", r.Restock)
}

// ToDeltas converts a validated request into product deltas.
func (r *RestockRequest) ToDeltas() []model.ProductDelta {
	deltas := make([]model.ProductDelta, len(r.Restock))
	for i, l := range r.Restock {
		deltas[i] = model.ProductDelta{ProductID: *l.ProductID, Quantity: l.Quantity}
	}
	return deltas
}

// SubmitOrderRequest is the body of POST /api/orders.
//
// @Description Hospital order
// @Example {"order_id": 123, "requested": [{"product_id": 0, "quantity": 2}, {"product_id": 10, "quantity": 4}]}
type SubmitOrderRequest struct {
	OrderID   *int              `json:"order_id" example:"123"`
	Requested []ProductQuantity `json:"requested" binding:"required"`
} // @name SubmitOrderRequest

// Validate requires an order id and at least one positive line.
func (r *SubmitOrderRequest) Validate() error {
	if r.OrderID == nil {
		return fieldError("order_id", "is required")
	}
	return validateLines("requested", r.Requested)
}

// ToOrder converts a validated request into an order.
func (r *SubmitOrderRequest) ToOrder() model.Order {
	order := model.Order{OrderID: *r.OrderID, Requested: make([]model.OrderLine, len(r.Requested))}
	for i, l := range r.Requested {
		order.Requested[i] = model.OrderLine{ProductID: *l.ProductID, Quantity: l.Quantity}
	}
	return order
}

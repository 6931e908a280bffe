// Package model defines the core domain entities for the drone fulfillment service.
package model

// ProductRecord is one catalog entry together with its on-hand quantity.
//
// @Description Catalog product and on-hand stock
// @Example {"product_id": 0, "product_name": "RBC A+ Adult", "mass_g": 700, "quantity": 30}
type ProductRecord struct {
	// ProductID identifies the product in the catalog
	ProductID int `json:"product_id" bson:"product_id" example:"0"`
	// ProductName is the human readable product name
	ProductName string `json:"product_name" bson:"product_name" example:"RBC A+ Adult"`
	// MassG is the mass of a single unit in grams
	MassG int `json:"mass_g" bson:"mass_g" example:"700"`
	// Quantity is the number of units on hand
	Quantity int `json:"quantity" bson:"quantity" example:"30"`
}

// CatalogEntry is the static product definition accepted by catalog load.
type CatalogEntry struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	MassG       int    `json:"mass_g"`
}

// ProductDelta is a quantity change for one product, used for restock input.
type ProductDelta struct {
	ProductID int `json:"product_id" example:"10"`
	Quantity  int `json:"quantity" example:"5"`
}

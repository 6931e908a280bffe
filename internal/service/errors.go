package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProduct is returned when a product id is not in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrDuplicateProduct is returned when a catalog repeats a product id.
	ErrDuplicateProduct = errors.New("duplicate product")
	// ErrInvalidQuantity is returned for non-positive or out of range restock and order quantities.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrInvalidMass is returned for catalog entries with a non-positive unit mass.
	ErrInvalidMass = errors.New("mass_g must be a positive integer")
	// ErrCatalogAlreadyLoaded is returned when the catalog is initialized twice.
	ErrCatalogAlreadyLoaded = errors.New("catalog already loaded")
	// ErrCatalogNotLoaded is returned when stock or orders arrive before the catalog.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	// ErrEmptyOrder is returned for orders without requested lines.
	ErrEmptyOrder = errors.New("order has no requested lines")
)

// ProductError ties a failure to the product it concerns.
type ProductError struct {
	ProductID int
	Err       error
}

// Error implements error.
func (e *ProductError) Error() string {
	return fmt.Sprintf("product %d: %v", e.ProductID, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ProductError) Unwrap() error {
	return e.Err
}

func productErr(productID int, err error) error {
	return &ProductError{ProductID: productID, Err: err}
}

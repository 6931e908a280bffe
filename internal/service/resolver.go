package service

import "github.com/guttosm/drone-fulfillment/internal/domain/model"

// Resolve splits a requested line into what can ship now and what must wait.
//
// Stock for the fulfillable part is withdrawn from the store. The input line is
// not modified; a new line carrying the fulfillable quantity is returned along
// with the deferred quantity. Unknown products and empty stock defer everything.
func Resolve(line model.OrderLine, store *InventoryStore) (model.OrderLine, int) {
	fulfillable := model.OrderLine{ProductID: line.ProductID}

	rec, err := store.Lookup(line.ProductID)
	if err != nil || rec.Quantity == 0 {
		return fulfillable, line.Quantity
	}

	fulfillable.Quantity = store.withdraw(line.ProductID, line.Quantity)
	return fulfillable, line.Quantity - fulfillable.Quantity
}

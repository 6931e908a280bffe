package model

// WarningOversizedUnit flags a unit heavier than the drone capacity.
const WarningOversizedUnit = "oversized_unit"

// Warning is a non-fatal condition raised while processing an order.
type Warning struct {
	Kind      string `json:"kind" example:"oversized_unit"`
	ProductID int    `json:"product_id" example:"42"`
	Message   string `json:"message"`
}

// LineOutcome records how one requested line was split.
type LineOutcome struct {
	ProductID int `json:"product_id"`
	Requested int `json:"requested"`
	Fulfilled int `json:"fulfilled"`
	Deferred  int `json:"deferred"`
}

// OrderResult is the outcome of one Order Processor pass.
//
// @Description Result of processing an order: shipments dispatched and remainder deferred
type OrderResult struct {
	OrderID    int              `json:"order_id" example:"123"`
	Lines      []LineOutcome    `json:"lines"`
	Containers []*Container     `json:"containers"`
	Shipments  []Shipment       `json:"shipments"`
	Backlog    *BacklogFragment `json:"backlog,omitempty"`
	Warnings   []Warning        `json:"warnings,omitempty"`
}

// FulfilledUnits sums the units fulfilled across all lines.
func (r OrderResult) FulfilledUnits() int {
	total := 0
	for _, l := range r.Lines {
		total += l.Fulfilled
	}
	return total
}

// DeferredUnits sums the units deferred across all lines.
func (r OrderResult) DeferredUnits() int {
	total := 0
	for _, l := range r.Lines {
		total += l.Deferred
	}
	return total
}

// RestockFailure describes one restock item that could not be applied.
type RestockFailure struct {
	ProductID int    `json:"product_id"`
	Error     string `json:"error"`
}

// RestockReport is the outcome of a restock and the backlog re-drive it triggered.
//
// @Description Restock outcome including backlog re-drive results
type RestockReport struct {
	Applied  []ProductDelta   `json:"applied"`
	Failed   []RestockFailure `json:"failed,omitempty"`
	Redriven []OrderResult    `json:"redriven"`
	Backlog  int              `json:"backlog_remaining"`
}

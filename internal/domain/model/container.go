package model

// DefaultCapacityG is the payload mass a single drone can carry.
const DefaultCapacityG = 1800

// Container is one drone load being filled for an order.
//
// RemainingCapacityG may go negative when a single unit is heavier than the
// drone capacity; such a container holds exactly that one unit.
type Container struct {
	ID                 string      `json:"id"`
	OrderID            int         `json:"order_id"`
	RemainingCapacityG int         `json:"remaining_capacity_g"`
	Contents           map[int]int `json:"contents"`
	// order in which products first entered the container
	productOrder []int
}

// NewContainer opens a container with the given capacity for an order.
func NewContainer(id string, orderID, capacityG int) *Container {
	return &Container{
		ID:                 id,
		OrderID:            orderID,
		RemainingCapacityG: capacityG,
		Contents:           make(map[int]int),
	}
}

// Add places count units of a product weighing massG each.
func (c *Container) Add(productID, massG, count int) {
	if _, ok := c.Contents[productID]; !ok {
		c.productOrder = append(c.productOrder, productID)
	}
	c.Contents[productID] += count
	c.RemainingCapacityG -= massG * count
}

// Units returns the total number of units packed.
func (c *Container) Units() int {
	total := 0
	for _, n := range c.Contents {
		total += n
	}
	return total
}

// ToShipment projects the container into a dispatch-ready shipment.
// It has no side effects, so projecting twice yields equal shipments.
func (c *Container) ToShipment() Shipment {
	shipped := make([]ShippedLine, 0, len(c.productOrder))
	for _, id := range c.productOrder {
		shipped = append(shipped, ShippedLine{ProductID: id, Quantity: c.Contents[id]})
	}
	return Shipment{ID: c.ID, OrderID: c.OrderID, Shipped: shipped}
}

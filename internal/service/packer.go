package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/guttosm/drone-fulfillment/internal/domain/model"
)

// PackerOption configures a ContainerPacker.
type PackerOption func(*ContainerPacker)

// ContainerPacker assigns units to capacity-bounded drone containers.
//
// Placement is first-fit: every unit goes to the earliest-created container
// whose remaining capacity is strictly greater than the unit mass, or into a
// newly opened container. The decreasing part of first-fit-decreasing comes
// from the caller sorting lines by unit mass before packing. Tests and other
// components rely on the earliest-created tie-break.
type ContainerPacker struct {
	capacityG int
	newID     func() string
}

// NewContainerPacker creates a packer for the given drone capacity.
func NewContainerPacker(capacityG int, opts ...PackerOption) *ContainerPacker {
	if capacityG <= 0 {
		capacityG = model.DefaultCapacityG
	}
	p := &ContainerPacker{
		capacityG: capacityG,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithContainerIDs overrides how container ids are generated.
func WithContainerIDs(gen func() string) PackerOption {
	return func(p *ContainerPacker) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// CapacityG returns the configured drone capacity.
func (p *ContainerPacker) CapacityG() int {
	return p.capacityG
}

// Pack places line.Quantity units of a product weighing massG each into
// containers and returns the extended container list. A unit heavier than the
// capacity still ships alone in its own container and produces a warning.
func (p *ContainerPacker) Pack(orderID int, line model.OrderLine, massG int, containers []*model.Container) ([]*model.Container, []model.Warning) {
	var warnings []model.Warning
	if massG > p.capacityG && line.Quantity > 0 {
		warnings = append(warnings, model.Warning{
			Kind:      model.WarningOversizedUnit,
			ProductID: line.ProductID,
			Message: fmt.Sprintf("%d unit(s) of %d g exceed drone capacity of %d g",
				line.Quantity, massG, p.capacityG),
		})
	}

	for unit := 0; unit < line.Quantity; unit++ {
		if c := firstFit(containers, massG); c != nil {
			c.Add(line.ProductID, massG, 1)
			continue
		}
		c := model.NewContainer(p.newID(), orderID, p.capacityG)
		c.Add(line.ProductID, massG, 1)
		containers = append(containers, c)
	}
	return containers, warnings
}

func firstFit(containers []*model.Container, massG int) *model.Container {
	for _, c := range containers {
		if c.RemainingCapacityG > massG {
			return c
		}
	}
	return nil
}

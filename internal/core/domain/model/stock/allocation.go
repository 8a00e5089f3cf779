package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAllocationIsNotConstructed indicates that an Allocation was not created
// through the NewAllocation constructor.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Allocation is the planned, not-yet-persisted portion of a purchase to be
// fulfilled from one warehouse. Allocations are produced by the allocator and
// consumed immediately to reserve stock and build order rows; they are never
// persisted on their own.
type Allocation struct {
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewAllocation creates an allocation of quantity units from one warehouse.
// Quantity must be strictly positive: a warehouse contributing nothing gets
// no allocation line.
func NewAllocation(warehouseID kernel.UUID, quantity int) (Allocation, error) {
	allocation := Allocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		allocation.setWarehouseID(warehouseID),
		allocation.setQuantity(quantity),
	); err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}

// Validate ensures the allocation was created through NewAllocation.
func (a Allocation) Validate() error {
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}

// WarehouseID returns the warehouse the quantity is taken from.
func (a Allocation) WarehouseID() kernel.UUID {
	return a.warehouseID
}

// Quantity returns the units taken from the warehouse.
func (a Allocation) Quantity() int {
	return a.quantity
}

func (a *Allocation) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	a.warehouseID = warehouseID
	return nil
}

func (a *Allocation) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	a.quantity = quantity
	return nil
}

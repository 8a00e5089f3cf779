package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRecordIsNotConstructed indicates that a Record was not created through
// the NewRecord constructor.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is a read-only view of the physically available units of one product
// at one warehouse. Records are owned by the inventory subsystem; the
// fulfillment core observes them at allocation time and never mutates them
// directly (reservation happens through the stock repository).
//
// Business rules:
//   - Warehouse and product identifiers must be valid
//   - Quantity must be zero or positive
type Record struct {
	warehouseID kernel.UUID
	productID   kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewRecord creates a stock record view for a product at a warehouse.
// Quantity may be zero (a warehouse that ran dry still has a record).
func NewRecord(warehouseID, productID kernel.UUID, quantity int) (Record, error) {
	record := Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setWarehouseID(warehouseID),
		record.setProductID(productID),
		record.setQuantity(quantity),
	); err != nil {
		return Record{}, err
	}

	return record, nil
}

// Validate ensures the record was created through NewRecord.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// WarehouseID returns the warehouse holding the stock.
func (r Record) WarehouseID() kernel.UUID {
	return r.warehouseID
}

// ProductID returns the product the stock belongs to.
func (r Record) ProductID() kernel.UUID {
	return r.productID
}

// Quantity returns the units available at the warehouse as observed at read
// time.
func (r Record) Quantity() int {
	return r.quantity
}

func (r *Record) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	r.warehouseID = warehouseID
	return nil
}

func (r *Record) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *Record) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not zero or greater", quantity))
	}
	r.quantity = quantity
	return nil
}

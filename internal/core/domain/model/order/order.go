package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents one fulfilled portion of a purchase: the units of one
// product taken from one warehouse for one buyer. A purchase covering several
// warehouses yields several Order rows, one per allocation line.
//
// Order follows these invariants:
//   - Must have valid unique identifiers (order, product, buyer, seller)
//   - Quantity must be positive
//   - Address snapshots are captured once at creation and never re-derived
//     from live address records
//   - Status only moves along the workflow's transition table, gated by the
//     resolved actor
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the only mutation
// after creation is ChangeStatus.
type Order struct {
	id        kernel.UUID
	productID kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID

	// customerAddress is the frozen delivery address text, phone included
	customerAddress kernel.AddressSnapshot

	// warehouseAddress is the frozen origin warehouse address text
	warehouseAddress kernel.AddressSnapshot

	quantity  int
	orderTime time.Time
	status    Status

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in the Unverified status. This is the only
// way to create an order from scratch; all business invariants are validated
// here.
//
// Parameters:
//   - id: unique identifier of this order row
//   - productID: the purchased product
//   - buyerID, sellerID: the two participants allowed to act on the order
//   - customerAddress: frozen delivery address snapshot (with phone line)
//   - warehouseAddress: frozen snapshot of the fulfilling warehouse address
//   - quantity: units taken from the warehouse (must be positive)
//   - orderTime: purchase timestamp (must not be zero)
func NewOrder(
	id, productID, buyerID, sellerID kernel.UUID,
	customerAddress, warehouseAddress kernel.AddressSnapshot,
	quantity int,
	orderTime time.Time,
) (*Order, error) {
	order := &Order{
		status:        Unverified,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setIDs(id, productID, buyerID, sellerID),
		order.setAddresses(customerAddress, warehouseAddress),
		order.setQuantity(quantity),
		order.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status. Used only by repositories; the snapshots are restored verbatim.
func RestoreOrder(
	id, productID, buyerID, sellerID kernel.UUID,
	customerAddress, warehouseAddress kernel.AddressSnapshot,
	quantity int,
	orderTime time.Time,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, productID, buyerID, sellerID,
		customerAddress, warehouseAddress, quantity, orderTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the purchased product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// CustomerAddress returns the frozen delivery address snapshot.
func (o *Order) CustomerAddress() kernel.AddressSnapshot {
	return o.customerAddress
}

// WarehouseAddress returns the frozen warehouse address snapshot.
func (o *Order) WarehouseAddress() kernel.AddressSnapshot {
	return o.warehouseAddress
}

// Quantity returns the units this order row covers.
func (o *Order) Quantity() int {
	return o.quantity
}

// OrderTime returns the purchase timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// ResolveActor maps an acting identity to its capability relative to this
// order. Any identity other than the order's buyer or seller fails with
// ErrActorIsNotParticipant before the transition table is consulted.
func (o *Order) ResolveActor(actingUserID kernel.UUID) (Actor, error) {
	if err := actingUserID.Validate(); err != nil {
		return ActorUnknown, err
	}

	switch {
	case actingUserID.IsEqual(o.sellerID):
		return Seller, nil
	case actingUserID.IsEqual(o.buyerID):
		return Buyer, nil
	default:
		return ActorUnknown, ErrActorIsNotParticipant
	}
}

// ChangeStatus moves the order along the workflow on behalf of the acting
// identity. The actor is resolved first (forbidden identities never reach
// the transition table), then the (current, requested, actor) triple is
// checked against the table. On success only the status field changes.
func (o *Order) ChangeStatus(actingUserID kernel.UUID, requested Status) error {
	actor, err := o.ResolveActor(actingUserID)
	if err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(requested, actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setIDs(id, productID, buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return err
	}

	o.id = id
	o.productID = productID
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setAddresses(customerAddress, warehouseAddress kernel.AddressSnapshot) error {
	if err := errors.Join(
		customerAddress.Validate(),
		warehouseAddress.Validate(),
	); err != nil {
		return err
	}

	o.customerAddress = customerAddress
	o.warehouseAddress = warehouseAddress
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = orderTime
	return nil
}

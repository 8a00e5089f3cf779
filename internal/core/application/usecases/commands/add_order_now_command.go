package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddOrderNowCommandIsNotConstructed = errors.New(
	"AddOrderNowCommand must be created via NewAddOrderNowCommand constructor",
)

// AddOrderNowCommand represents a direct purchase of one product, bypassing
// the cart. The requested quantity is sourced from warehouses greedily and
// every resulting order freezes the buyer's chosen delivery address.
//
// Example:
//
//	cmd, err := NewAddOrderNowCommand(buyerID, productID, addressID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid purchase data: %w", err)
//	}
//
//	handler := NewAddOrderNowCommandHandler(uowFactory, catalog, addresses)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type AddOrderNowCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	productID kernel.UUID
	addressID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderNowCommand creates a command for a direct single-product purchase.
// Validates all identifiers and that quantity is within the per-product cap.
func NewAddOrderNowCommand(
	buyerID, productID, addressID kernel.UUID,
	quantity int,
) (AddOrderNowCommand, error) {
	cmd := AddOrderNowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
		cmd.setAddressID(addressID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderNowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderNowCommandIsNotConstructed if validation fails.
func (c AddOrderNowCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNowCommandIsNotConstructed)
}

// BuyerID returns the purchasing user's identifier.
func (c AddOrderNowCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the identifier of the product being purchased.
func (c AddOrderNowCommand) ProductID() kernel.UUID {
	return c.productID
}

// AddressID returns the identifier of the buyer's chosen delivery address.
func (c AddOrderNowCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Quantity returns the total number of units requested.
func (c AddOrderNowCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderNowCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddOrderNowCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderNowCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *AddOrderNowCommand) setQuantity(quantity int) error {
	if quantity < 1 || quantity > cart.MaxQuantityPerProduct {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, cart.MaxQuantityPerProduct)
	}

	c.quantity = quantity
	return nil
}

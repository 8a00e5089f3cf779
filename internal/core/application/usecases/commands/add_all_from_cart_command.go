package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddAllFromCartCommandIsNotConstructed = errors.New(
	"AddAllFromCartCommand must be created via NewAddAllFromCartCommand constructor",
)

// AddAllFromCartCommand represents a checkout of the buyer's whole cart.
// Every cart line is purchased in one transaction; if any line cannot be
// fully sourced the whole checkout fails and the cart is left untouched.
type AddAllFromCartCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddAllFromCartCommand creates a command to purchase the buyer's cart.
// Validates both identifiers.
func NewAddAllFromCartCommand(buyerID, addressID kernel.UUID) (AddAllFromCartCommand, error) {
	cmd := AddAllFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setAddressID(addressID),
	); err != nil {
		return AddAllFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddAllFromCartCommandIsNotConstructed if validation fails.
func (c AddAllFromCartCommand) Validate() error {
	return c.guard.Validate(ErrAddAllFromCartCommandIsNotConstructed)
}

// BuyerID returns the purchasing user's identifier.
func (c AddAllFromCartCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// AddressID returns the identifier of the buyer's chosen delivery address.
func (c AddAllFromCartCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *AddAllFromCartCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddAllFromCartCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

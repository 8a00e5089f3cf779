package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along its
// status workflow. The acting user is identified here; which transitions
// they may perform is decided by the order aggregate itself.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	orderID   kernel.UUID
	requested order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The status code must be one of the requestable workflow codes; codes
// outside that range fail with a range error before any order is loaded.
func NewChangeOrderStatusCommand(
	actorID, orderID kernel.UUID,
	statusCode int,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
		cmd.setRequested(statusCode),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the user requesting the change.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the identifier of the order being changed.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the target status.
func (c ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setRequested(statusCode int) error {
	requested, err := order.StatusFromRequestCode(statusCode)
	if err != nil {
		return err
	}

	c.requested = requested
	return nil
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository defines the contract for reading and clearing a buyer's
// cart during the batched purchase path.
type CartRepository interface {
	// GetForBuyer retrieves every line of the buyer's cart.
	// An empty cart yields an empty slice, not an error.
	GetForBuyer(ctx context.Context, buyerID kernel.UUID) ([]cart.Item, error)

	// RemoveForBuyer deletes every line of the buyer's cart. Called in the
	// same transaction that persists the resulting orders.
	RemoveForBuyer(ctx context.Context, buyerID kernel.UUID) error
}

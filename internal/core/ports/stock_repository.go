package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// ErrStockReservationConflict is returned by Reserve when a warehouse's
// quantity no longer covers its allocation line. With stock rows locked
// during planning this only happens when the plan was made outside the
// reserving transaction.
var ErrStockReservationConflict = errors.New("stock reservation conflict")

// StockRepository defines the contract for reading and reserving warehouse
// stock. Stock rows are owned by the inventory subsystem; this core only
// observes quantities and decrements them when a purchase commits.
type StockRepository interface {
	// GetForProduct retrieves every stock record for a product in stable
	// warehouse insertion order. Inside an active transaction the rows are
	// locked, so two concurrent allocations against the same stock
	// serialize instead of both observing the same available quantity.
	GetForProduct(ctx context.Context, productID kernel.UUID) ([]stock.Record, error)

	// Reserve decrements each allocated warehouse's quantity by the line's
	// amount. The decrement is guarded: a row whose quantity no longer
	// covers its line fails the whole reservation, and the surrounding
	// transaction rolls every prior decrement back.
	Reserve(ctx context.Context, productID kernel.UUID, lines []stock.Allocation) error
}

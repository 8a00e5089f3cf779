package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductCatalog resolves product listings owned by sellers.
type ProductCatalog interface {
	// GetProduct retrieves the product with the given ID or an
	// ObjectNotFoundError when no such product exists.
	GetProduct(ctx context.Context, productID kernel.UUID) (product.Product, error)
}

// AddressBook resolves delivery endpoints into immutable snapshots so that
// orders stay readable after the source address is edited or removed.
type AddressBook interface {
	// CustomerSnapshot resolves the buyer's address with the given ID.
	// Returns an ObjectNotFoundError when the address does not exist or
	// does not belong to the buyer.
	CustomerSnapshot(ctx context.Context, buyerID kernel.UUID, addressID kernel.UUID) (kernel.AddressSnapshot, error)

	// WarehouseSnapshot resolves the address of the given warehouse.
	WarehouseSnapshot(ctx context.Context, warehouseID kernel.UUID) (kernel.AddressSnapshot, error)
}

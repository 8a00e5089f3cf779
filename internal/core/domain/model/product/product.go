// Package product holds the catalog view consumed by the fulfillment core.
// The catalog service owns product data; this core only needs the identity
// of a product and of the seller who owns it.
package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrProductIsNotConstructed indicates that a Product was not created through
// the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the slice of a catalog record this core cares about: the product
// identity and its owning seller, used for actor resolution on orders.
type Product struct {
	id       kernel.UUID
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProduct creates a product view from validated catalog data.
func NewProduct(id, sellerID kernel.UUID) (Product, error) {
	if err := errors.Join(id.Validate(), sellerID.Validate()); err != nil {
		return Product{}, err
	}

	return Product{
		id:       id,
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the identifier of the seller owning the product.
func (p Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Package cart holds the cart-line view consumed by the batched purchase
// path. Cart persistence is owned by the cart subsystem; this core reads the
// lines of a buyer's cart and clears them once the purchase commits.
package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// MaxQuantityPerProduct caps how many units of one product a cart line may
// hold, matching the bound enforced on direct purchases.
const MaxQuantityPerProduct = 99

// ErrItemIsNotConstructed indicates that an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a buyer's cart: a product and the desired quantity.
type Item struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates a cart line. Quantity must be within 1..MaxQuantityPerProduct.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 || quantity > MaxQuantityPerProduct {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantityPerProduct)
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product the line refers to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the desired units of the product.
func (i Item) Quantity() int {
	return i.quantity
}

// Package cartrepo implements cart reads and clears over GORM. Cart lines
// are written by the storefront; checkout only consumes and deletes them.
package cartrepo

import (
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one line of a buyer's cart.
type CartItemDTO struct {
	BuyerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func toDomain(dto CartItemDTO) (cart.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Item{}, err
	}

	return cart.NewItem(productID, dto.Quantity)
}

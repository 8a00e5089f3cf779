package cartrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetForBuyer retrieves every line of the buyer's cart. An empty cart yields
// an empty slice.
func (r *GormCartRepository) GetForBuyer(ctx context.Context, buyerID kernel.UUID) ([]cart.Item, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Order("product_id").
		Find(&dtos, "buyer_id = ?", buyerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// RemoveForBuyer deletes every line of the buyer's cart.
func (r *GormCartRepository) RemoveForBuyer(ctx context.Context, buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "buyer_id = ?", buyerID.Bytes()).Error
}

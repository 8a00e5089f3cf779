package stockrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// GetForProduct retrieves every stock record for a product in warehouse
// insertion order. When the repository is bound to a transaction the
// selected rows stay locked until the transaction ends, so two purchases
// planning against the same stock serialize.
func (r *GormStockRepository) GetForProduct(ctx context.Context, productID kernel.UUID) ([]stock.Record, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockRecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("created_at, warehouse_id").
		Find(&dtos, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]stock.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Reserve decrements each allocated warehouse's quantity by its line's
// amount. The decrement is guarded by the current quantity, so a row that no
// longer covers its line changes nothing and the reservation fails with
// ErrStockReservationConflict.
func (r *GormStockRepository) Reserve(ctx context.Context, productID kernel.UUID, lines []stock.Allocation) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for _, line := range lines {
		result := r.db.WithContext(ctx).Exec(`
			UPDATE stock_records
			SET quantity = quantity - ?
			WHERE warehouse_id = ? AND product_id = ? AND quantity >= ?
		`, line.Quantity(), line.WarehouseID().Bytes(), productID.Bytes(), line.Quantity())
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ports.ErrStockReservationConflict
		}
	}

	return nil
}

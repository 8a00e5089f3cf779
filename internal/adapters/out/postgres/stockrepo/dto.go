// Package stockrepo implements warehouse stock reads and reservations over
// GORM. Stock rows are written by the inventory subsystem; this package only
// reads quantities and applies guarded decrements when purchases commit.
package stockrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockRecordDTO represents one warehouse's holding of one product.
// CreatedAt orders the rows so allocation walks warehouses in the order the
// inventory subsystem registered them.
type StockRecordDTO struct {
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity    int
	CreatedAt   time.Time
}

// TableName specifies the database table name for stock records.
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

func toDomain(dto StockRecordDTO) (stock.Record, error) {
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return stock.Record{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return stock.Record{}, err
	}

	return stock.NewRecord(warehouseID, productID, dto.Quantity)
}

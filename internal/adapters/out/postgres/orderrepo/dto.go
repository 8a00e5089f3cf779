// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes on
// the two participant columns the listing queries filter by.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;index"`
	BuyerID          uuid.UUID `gorm:"type:uuid;index"`
	SellerID         uuid.UUID `gorm:"type:uuid;index"`
	CustomerAddress  string
	WarehouseAddress string
	Quantity         int
	OrderTime        time.Time
	Status           int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Address snapshots persist as their frozen multi-line text.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		BuyerID:          aggregate.BuyerID().Bytes(),
		SellerID:         aggregate.SellerID().Bytes(),
		CustomerAddress:  aggregate.CustomerAddress().String(),
		WarehouseAddress: aggregate.WarehouseAddress().String(),
		Quantity:         aggregate.Quantity(),
		OrderTime:        aggregate.OrderTime(),
		Status:           int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	customerAddress, err := kernel.RestoreAddressSnapshot(dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	warehouseAddress, err := kernel.RestoreAddressSnapshot(dto.WarehouseAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, productID, buyerID, sellerID,
		customerAddress, warehouseAddress,
		dto.Quantity, dto.OrderTime, order.Status(dto.Status))
}

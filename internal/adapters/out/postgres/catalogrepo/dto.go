// Package catalogrepo provides read-only access to the listings the
// storefront maintains: products, customer delivery addresses, and warehouse
// locations. Purchases resolve these into frozen snapshots; nothing here is
// ever written by the fulfillment core.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductDTO represents a product listing row. Only the columns the
// fulfillment core needs are mapped.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product listings.
func (ProductDTO) TableName() string {
	return "products"
}

// CustomerAddressDTO represents one of a user's saved delivery addresses.
type CustomerAddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Line1   string
	Line2   string
	City    string
	Country string
	Zip     string
	Phone   string
}

// TableName specifies the database table name for customer addresses.
func (CustomerAddressDTO) TableName() string {
	return "customer_addresses"
}

// WarehouseDTO represents a warehouse and its address.
type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Line1   string
	Line2   string
	City    string
	Country string
	Zip     string
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func (dto CustomerAddressDTO) snapshot() (kernel.AddressSnapshot, error) {
	snapshot, err := kernel.NewAddressSnapshot(dto.Line1, dto.Line2, dto.City, dto.Country, dto.Zip)
	if err != nil {
		return kernel.AddressSnapshot{}, err
	}

	if dto.Phone == "" {
		return snapshot, nil
	}

	return snapshot.WithPhone(dto.Phone)
}

func (dto WarehouseDTO) snapshot() (kernel.AddressSnapshot, error) {
	return kernel.NewAddressSnapshot(dto.Line1, dto.Line2, dto.City, dto.Country, dto.Zip)
}

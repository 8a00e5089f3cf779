package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements the ProductCatalog and AddressBook ports
// using GORM. All lookups run on the main connection outside any unit of
// work, since none of the underlying rows are modified by purchases.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetProduct retrieves the product with the given ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, productID kernel.UUID) (product.Product, error) {
	if err := productID.Validate(); err != nil {
		return product.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, errs.NewObjectNotFoundError("product", productID.String())
		}
		return product.Product{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(productID, sellerID)
}

// CustomerSnapshot resolves one of the buyer's saved addresses into a frozen
// snapshot. An address belonging to another user is reported as not found
// rather than forbidden, so the lookup does not leak address ownership.
func (r *GormCatalogRepository) CustomerSnapshot(
	ctx context.Context,
	buyerID, addressID kernel.UUID,
) (kernel.AddressSnapshot, error) {
	if err := errors.Join(buyerID.Validate(), addressID.Validate()); err != nil {
		return kernel.AddressSnapshot{}, err
	}

	var dto CustomerAddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND user_id = ?", addressID.Bytes(), buyerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.AddressSnapshot{}, errs.NewObjectNotFoundError("address", addressID.String())
		}
		return kernel.AddressSnapshot{}, err
	}

	return dto.snapshot()
}

// WarehouseSnapshot resolves the address of the given warehouse into a
// frozen snapshot.
func (r *GormCatalogRepository) WarehouseSnapshot(
	ctx context.Context,
	warehouseID kernel.UUID,
) (kernel.AddressSnapshot, error) {
	if err := warehouseID.Validate(); err != nil {
		return kernel.AddressSnapshot{}, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", warehouseID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.AddressSnapshot{}, errs.NewObjectNotFoundError("warehouse", warehouseID.String())
		}
		return kernel.AddressSnapshot{}, err
	}

	return dto.snapshot()
}

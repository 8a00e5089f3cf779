package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AddOrderNowCommandHandler handles the business logic for direct purchases.
// Sources the requested quantity from warehouses greedily and persists one
// order per warehouse the demand was taken from. Reservation and orders
// commit or roll back together.
type AddOrderNowCommandHandler struct {
	uowFactory PurchaseUoWFactory
	catalog    ports.ProductCatalog
	addresses  ports.AddressBook
	allocator  services.StockAllocator
}

// NewAddOrderNowCommandHandler creates a handler for direct purchase operations.
func NewAddOrderNowCommandHandler(
	uowFactory PurchaseUoWFactory,
	catalog ports.ProductCatalog,
	addresses ports.AddressBook,
) AddOrderNowCommandHandler {
	return AddOrderNowCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		addresses:  addresses,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle processes the direct purchase command.
// Returns the IDs of the created order rows in allocation order. Fails
// without side effects when total available stock cannot cover the
// requested quantity.
func (h *AddOrderNowCommandHandler) Handle(ctx context.Context, cmd AddOrderNowCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerAddress, err := h.addresses.CustomerSnapshot(ctx, cmd.BuyerID(), cmd.AddressID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	plan, err := planProductPurchase(ctx, uow, h.catalog, h.allocator, cmd.ProductID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	orderIDs, err := commitProductPurchase(ctx, uow, h.addresses,
		cmd.BuyerID(), customerAddress, plan, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}

// purchasePlan is one product's resolved sourcing: which warehouses cover
// the demand and who sells the product. Built under stock row locks, so it
// stays valid until the surrounding transaction ends.
type purchasePlan struct {
	productID kernel.UUID
	sellerID  kernel.UUID
	lines     []stock.Allocation
}

// planProductPurchase reads one product's stock under lock and allocates the
// demand across warehouses. No state is changed yet.
func planProductPurchase(
	ctx context.Context,
	uow PurchaseUoW,
	catalog ports.ProductCatalog,
	allocator services.StockAllocator,
	productID kernel.UUID,
	quantity int,
) (purchasePlan, error) {
	product, err := catalog.GetProduct(ctx, productID)
	if err != nil {
		return purchasePlan{}, err
	}

	records, err := uow.StockRepository().GetForProduct(ctx, productID)
	if err != nil {
		return purchasePlan{}, err
	}

	lines, err := allocator.Allocate(quantity, records)
	if err != nil {
		return purchasePlan{}, err
	}

	return purchasePlan{
		productID: productID,
		sellerID:  product.SellerID(),
		lines:     lines,
	}, nil
}

// commitProductPurchase applies a plan: decrements the allocated warehouses'
// stock and persists one order per allocation line. Runs inside the caller's
// transaction so a failed line undoes the whole purchase.
func commitProductPurchase(
	ctx context.Context,
	uow PurchaseUoW,
	addresses ports.AddressBook,
	buyerID kernel.UUID,
	customerAddress kernel.AddressSnapshot,
	plan purchasePlan,
	orderTime time.Time,
) ([]kernel.UUID, error) {
	if err := uow.StockRepository().Reserve(ctx, plan.productID, plan.lines); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orderIDs := make([]kernel.UUID, 0, len(plan.lines))
	for _, line := range plan.lines {
		warehouseAddress, err := addresses.WarehouseSnapshot(ctx, line.WarehouseID())
		if err != nil {
			return nil, err
		}

		aggregate, err := order.NewOrder(kernel.NewUUID(), plan.productID, buyerID, plan.sellerID,
			customerAddress, warehouseAddress, line.Quantity(), orderTime)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return nil, err
		}

		orderIDs = append(orderIDs, aggregate.ID())
	}

	return orderIDs, nil
}

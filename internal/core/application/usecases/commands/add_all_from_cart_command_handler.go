package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AddAllFromCartCommandHandler handles the business logic for cart checkout.
// Purchases every cart line with the same per-product sourcing as a direct
// purchase and clears the cart, all in one transaction. Any line that cannot
// be fully sourced fails the whole checkout with nothing persisted.
type AddAllFromCartCommandHandler struct {
	uowFactory CartPurchaseUoWFactory
	catalog    ports.ProductCatalog
	addresses  ports.AddressBook
	allocator  services.StockAllocator
}

// NewAddAllFromCartCommandHandler creates a handler for cart checkout operations.
func NewAddAllFromCartCommandHandler(
	uowFactory CartPurchaseUoWFactory,
	catalog ports.ProductCatalog,
	addresses ports.AddressBook,
) AddAllFromCartCommandHandler {
	return AddAllFromCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		addresses:  addresses,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle processes the cart checkout command.
// Returns the IDs of every created order row. An empty cart checks out
// trivially with no orders created.
func (h *AddAllFromCartCommandHandler) Handle(ctx context.Context, cmd AddAllFromCartCommand) ([]kernel.UUID, error) {
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

	items, err := uow.CartRepository().GetForBuyer(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}

	// Plan every line before touching any stock. The stock rows stay
	// locked until commit, so the plans cannot go stale.
	plans := make([]purchasePlan, 0, len(items))
	for _, item := range items {
		plan, err := planProductPurchase(ctx, uow, h.catalog, h.allocator,
			item.ProductID(), item.Quantity())
		if err != nil {
			return nil, err
		}

		plans = append(plans, plan)
	}

	orderTime := time.Now().UTC()
	orderIDs := make([]kernel.UUID, 0, len(plans))
	for _, plan := range plans {
		planOrderIDs, err := commitProductPurchase(ctx, uow, h.addresses,
			cmd.BuyerID(), customerAddress, plan, orderTime)
		if err != nil {
			return nil, err
		}

		orderIDs = append(orderIDs, planOrderIDs...)
	}

	if err = uow.CartRepository().RemoveForBuyer(ctx, cmd.BuyerID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}

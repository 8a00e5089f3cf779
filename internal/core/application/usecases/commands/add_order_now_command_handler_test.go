package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderNowCommandHandler_Handle_SplitsAcrossWarehouses(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	warehouseA := kernel.NewUUID()
	warehouseB := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderNowCommand(buyerID, productID, kernel.NewUUID(), 7)

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(mustProduct(productID, sellerID), nil).Once()

	addresses := new(MockAddressBook)
	addresses.On("CustomerSnapshot", ctx, buyerID, cmd.AddressID()).
		Return(mustSnapshot("12 Elm St"), nil).Once()
	addresses.On("WarehouseSnapshot", ctx, warehouseA).Return(mustSnapshot("Depot A"), nil).Once()
	addresses.On("WarehouseSnapshot", ctx, warehouseB).Return(mustSnapshot("Depot B"), nil).Once()

	stockRepo := new(MockStockRepository)
	stockRepo.On("GetForProduct", ctx, productID).Return([]stock.Record{
		mustRecord(warehouseA, productID, 5),
		mustRecord(warehouseB, productID, 3),
	}, nil).Once()
	stockRepo.On("Reserve", ctx, productID, mock.MatchedBy(func(lines []stock.Allocation) bool {
		return len(lines) == 2 && lines[0].Quantity() == 5 && lines[1].Quantity() == 2
	})).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Quantity() == 5 && o.WarehouseAddress().IsEqual(mustSnapshot("Depot A"))
	})).Return(nil).Once()
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Quantity() == 2 && o.WarehouseAddress().IsEqual(mustSnapshot("Depot B"))
	})).Return(nil).Once()

	uow := new(MockPurchaseUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Twice()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderNowCommandHandler(factory, catalog, addresses)
	orderIDs, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, orderIDs, 2)
	stockRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalog.AssertExpectations(t)
	addresses.AssertExpectations(t)
}

func TestAddOrderNowCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderNowCommand(buyerID, productID, kernel.NewUUID(), 10)

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(mustProduct(productID, kernel.NewUUID()), nil).Once()

	addresses := new(MockAddressBook)
	addresses.On("CustomerSnapshot", ctx, buyerID, cmd.AddressID()).
		Return(mustSnapshot("12 Elm St"), nil).Once()

	stockRepo := new(MockStockRepository)
	stockRepo.On("GetForProduct", ctx, productID).Return([]stock.Record{
		mustRecord(kernel.NewUUID(), productID, 5),
		mustRecord(kernel.NewUUID(), productID, 3),
	}, nil).Once()

	uow := new(MockPurchaseUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderNowCommandHandler(factory, catalog, addresses)
	orderIDs, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
	assert.Nil(t, orderIDs)
	stockRepo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddOrderNowCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddOrderNowCommand{} // not constructed properly

	factory := new(MockPurchaseUoWFactory)
	h := commands.NewAddOrderNowCommandHandler(factory, new(MockProductCatalog), new(MockAddressBook))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderNowCommandHandler_Handle_AddressError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderNowCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)

	addresses := new(MockAddressBook)
	addresses.On("CustomerSnapshot", ctx, cmd.BuyerID(), cmd.AddressID()).
		Return(kernel.AddressSnapshot{}, errAddressBookUnavailable).Once()

	factory := new(MockPurchaseUoWFactory)
	h := commands.NewAddOrderNowCommandHandler(factory, new(MockProductCatalog), addresses)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errAddressBookUnavailable)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderNowCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderNowCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)

	addresses := new(MockAddressBook)
	addresses.On("CustomerSnapshot", ctx, cmd.BuyerID(), cmd.AddressID()).
		Return(mustSnapshot("12 Elm St"), nil).Once()

	uow := new(MockPurchaseUoW)
	factory := new(MockPurchaseUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddOrderNowCommandHandler(factory, new(MockProductCatalog), addresses)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddOrderNowCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderNowCommand(buyerID, productID, kernel.NewUUID(), 2)

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(mustProduct(productID, kernel.NewUUID()), nil).Once()

	addresses := new(MockAddressBook)
	addresses.On("CustomerSnapshot", ctx, buyerID, cmd.AddressID()).
		Return(mustSnapshot("12 Elm St"), nil).Once()
	addresses.On("WarehouseSnapshot", ctx, warehouseID).Return(mustSnapshot("Depot A"), nil).Once()

	stockRepo := new(MockStockRepository)
	stockRepo.On("GetForProduct", ctx, productID).Return([]stock.Record{
		mustRecord(warehouseID, productID, 9),
	}, nil).Once()
	stockRepo.On("Reserve", ctx, productID, mock.Anything).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockPurchaseUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(stockRepo).Twice()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderNowCommandHandler(factory, catalog, addresses)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

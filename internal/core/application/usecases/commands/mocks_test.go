package commands_test

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) GetForProduct(ctx context.Context, productID kernel.UUID) ([]stock.Record, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stock.Record), args.Error(1)
}
func (m *MockStockRepository) Reserve(ctx context.Context, productID kernel.UUID, lines []stock.Allocation) error {
	args := m.Called(ctx, productID, lines)
	return args.Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetForBuyer(ctx context.Context, buyerID kernel.UUID) ([]cart.Item, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Item), args.Error(1)
}
func (m *MockCartRepository) RemoveForBuyer(ctx context.Context, buyerID kernel.UUID) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProduct(ctx context.Context, productID kernel.UUID) (product.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(product.Product), args.Error(1)
}

type MockAddressBook struct{ mock.Mock }

func (m *MockAddressBook) CustomerSnapshot(ctx context.Context, buyerID, addressID kernel.UUID) (kernel.AddressSnapshot, error) {
	args := m.Called(ctx, buyerID, addressID)
	return args.Get(0).(kernel.AddressSnapshot), args.Error(1)
}
func (m *MockAddressBook) WarehouseSnapshot(ctx context.Context, warehouseID kernel.UUID) (kernel.AddressSnapshot, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(kernel.AddressSnapshot), args.Error(1)
}

type MockPurchaseUoW struct{ mock.Mock }

func (m *MockPurchaseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPurchaseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPurchaseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPurchaseUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPurchaseUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockPurchaseUoWFactory struct{ mock.Mock }

func (m *MockPurchaseUoWFactory) Create() commands.PurchaseUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseUoW)
}

type MockCartPurchaseUoW struct{ MockPurchaseUoW }

func (m *MockCartPurchaseUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartPurchaseUoWFactory struct{ mock.Mock }

func (m *MockCartPurchaseUoWFactory) Create() commands.CartPurchaseUoW {
	args := m.Called()
	return args.Get(0).(commands.CartPurchaseUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

var errAddressBookUnavailable = errors.New("address store unavailable")

func mustSnapshot(line1 string) kernel.AddressSnapshot {
	snapshot, err := kernel.NewAddressSnapshot(line1, "", "Springfield", "US", "62704")
	if err != nil {
		panic(err)
	}
	return snapshot
}

func mustProduct(id, sellerID kernel.UUID) product.Product {
	p, err := product.NewProduct(id, sellerID)
	if err != nil {
		panic(err)
	}
	return p
}

func mustRecord(warehouseID, productID kernel.UUID, quantity int) stock.Record {
	record, err := stock.NewRecord(warehouseID, productID, quantity)
	if err != nil {
		panic(err)
	}
	return record
}

func mustCartItem(productID kernel.UUID, quantity int) cart.Item {
	item, err := cart.NewItem(productID, quantity)
	if err != nil {
		panic(err)
	}
	return item
}

package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalogRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalogRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateAddOrderNowCommandHandler() commands.AddOrderNowCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderNowCommandHandler(f, c.catalog, c.catalog)
}

func (c *CompositionRoot) CreateAddAllFromCartCommandHandler() commands.AddAllFromCartCommandHandler {
	var f commands.CartPurchaseUoWFactory = FuncCartPurchaseUoWFactory(func() commands.CartPurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAllFromCartCommandHandler(f, c.catalog, c.catalog)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncCartPurchaseUoWFactory func() commands.CartPurchaseUoW

func (f FuncCartPurchaseUoWFactory) Create() commands.CartPurchaseUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

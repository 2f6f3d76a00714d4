package cmd

import (
	"waiterbot/internal/adapters/out/postgres"
	"waiterbot/internal/core/application/usecases/commands"
	"waiterbot/internal/core/application/usecases/queries"
	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   services.OrderResolver
	catalog    menu.Catalog
	week       schedule.Week
}

func NewCompositionRoot(
	_ Config, gormDB *gorm.DB, catalog menu.Catalog, week schedule.Week,
) (CompositionRoot, error) {
	resolver, err := services.NewOrderResolver(catalog)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   resolver,
		catalog:    catalog,
		week:       week,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.resolver)
}

func (c *CompositionRoot) CreatePlaceAdditionalRequestOrderCommandHandler() commands.PlaceAdditionalRequestOrderCommandHandler {
	return commands.NewPlaceAdditionalRequestOrderCommandHandler(c.orderUoWFactory(), c.resolver)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResetOrderCommandHandler() commands.ResetOrderCommandHandler {
	return commands.NewResetOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResetAbandonedOrdersCommandHandler() commands.ResetAbandonedOrdersCommandHandler {
	return commands.NewResetAbandonedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() (queries.GetMenuQueryHandler, error) {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetOpeningHoursQueryHandler() (queries.GetOpeningHoursQueryHandler, error) {
	return queries.NewGetOpeningHoursQueryHandler(c.week)
}

func (c *CompositionRoot) CreateCheckIsOpenQueryHandler() (queries.CheckIsOpenQueryHandler, error) {
	return queries.NewCheckIsOpenQueryHandler(c.week)
}

func (c *CompositionRoot) CreateCheckCurrentlyOpenQueryHandler() (queries.CheckCurrentlyOpenQueryHandler, error) {
	return queries.NewCheckCurrentlyOpenQueryHandler(c.week)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

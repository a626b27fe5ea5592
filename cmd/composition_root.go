package cmd

import (
	"time"

	"gorm.io/gorm"

	"genzdeliver/internal/adapters/out/postgres"
	"genzdeliver/internal/core/application/usecases/commands"
	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tariffs    ports.TariffProvider
	clock      ports.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, tariffs ports.TariffProvider) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tariffs:    tariffs,
		clock:      systemClock{},
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateCityCommandHandler() commands.CreateCityCommandHandler {
	var f commands.CityUoWFactory = FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCityCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCalculateDeliveryQueryHandler() queries.CalculateDeliveryQueryHandler {
	return queries.NewCalculateDeliveryQueryHandler(c.tariffs)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCitiesQueryHandler() queries.GetCitiesQueryHandler {
	return queries.NewGetCitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

package cmd

import (
	"log/slog"
	"os"

	httpin "attieke/internal/adapters/in/http"
	"attieke/internal/adapters/out/eventbus"
	"attieke/internal/adapters/out/postgres"
	"attieke/internal/core/application/usecases/commands"
	"attieke/internal/core/application/usecases/queries"
	"attieke/internal/core/domain/services"
	"attieke/internal/core/ports"
	"attieke/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	stream     *eventbus.OrderStream
	tariff     services.Tariff
	geocoder   services.Geocoder
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		stream:     eventbus.NewOrderStream(),
		tariff:     services.NewDefaultTariff(),
		geocoder:   services.NewGeocoder(),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Stream() ports.OrderStream {
	return c.stream
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.tariff, c.stream)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackQueryHandler() queries.GetOrderTrackQueryHandler {
	return queries.NewGetOrderTrackQueryHandler(c.gormDB, c.geocoder)
}

func (c *CompositionRoot) CreateGetOrdersInDeliveryQueryHandler() queries.GetOrdersInDeliveryQueryHandler {
	return queries.NewGetOrdersInDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesStatsQueryHandler() queries.GetSalesStatsQueryHandler {
	return queries.NewGetSalesStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersInDeliveryQueryHandler(),
		c.geocoder,
		c.stream,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetClientOrdersQueryHandler(),
		c.CreateGetOrderTrackQueryHandler(),
		c.CreateGetSalesStatsQueryHandler(),
		c.stream,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

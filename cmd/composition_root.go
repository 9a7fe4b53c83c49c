package cmd

import (
	"time"

	"couriernet/internal/adapters/out/postgres"
	"couriernet/internal/adapters/out/redis/trackcache"
	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/application/usecases/queries"
	"couriernet/internal/core/ports"
	"couriernet/internal/jobs"

	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. All
// dependency decisions live here; the rest of the codebase only sees
// interfaces.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	trackingCache ports.TrackingCache
	logger        *slog.Logger
}

// NewCompositionRoot builds the root from the opened connections.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	ttl := config.TrackingCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		trackingCache: trackcache.NewCache(redisClient, ttl),
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	return commands.NewAcceptPickupCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	return commands.NewReportProblemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOverrideStatusCommandHandler() commands.OverrideStatusCommandHandler {
	return commands.NewOverrideStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateHideOrderCommandHandler() commands.HideOrderCommandHandler {
	return commands.NewHideOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeHistoryCommandHandler() commands.PurgeHistoryCommandHandler {
	return commands.NewPurgeHistoryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableCoursesQueryHandler() queries.GetAvailableCoursesQueryHandler {
	// A unit of work outside a transaction hands out repositories bound
	// to the bare connection, which is exactly what the search needs.
	return queries.NewGetAvailableCoursesQueryHandler(c.uowFactory.Create())
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierOrdersQueryHandler() queries.GetCarrierOrdersQueryHandler {
	return queries.NewGetCarrierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierStatsQueryHandler() queries.GetCarrierStatsQueryHandler {
	return queries.NewGetCarrierStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierDriversQueryHandler() queries.GetCarrierDriversQueryHandler {
	return queries.NewGetCarrierDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB, c.trackingCache, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetOpenInterventionsQueryHandler(c.gormDB),
		queries.NewGetChangedOrderCodesQueryHandler(c.gormDB),
		c.trackingCache,
		c.logger,
	)
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

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

package cmd

import (
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.StatsCache
	assigner   services.OrderAssigner
	clock      ports.Clock
}

// NewCompositionRoot wires the application. cache may be nil.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, cache ports.StatsCache) (CompositionRoot, error) {
	packer, err := services.NewPacker(cfg.PackingStrategy, cfg.KnapsackMaxCells)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		assigner:   services.NewOrderAssigner(packer),
		clock:      ports.SystemClock,
	}, nil
}

func (c *CompositionRoot) NewCreateCouriersCommandHandler() commands.CreateCouriersCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCouriersCommandHandler(f)
}

func (c *CompositionRoot) NewCreateOrdersCommandHandler() commands.CreateOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrdersCommandHandler(f)
}

func (c *CompositionRoot) NewAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.crossAggregateFactory(), c.assigner, c.clock)
}

func (c *CompositionRoot) NewCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.crossAggregateFactory(), c.cache)
}

func (c *CompositionRoot) NewUpdateCourierProfileCommandHandler() commands.UpdateCourierProfileCommandHandler {
	return commands.NewUpdateCourierProfileCommandHandler(
		c.crossAggregateFactory(), services.NewRecalculator(), c.cache)
}

func (c *CompositionRoot) NewGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.gormDB, services.NewRatingCalculator(), c.cache)
}

func (c *CompositionRoot) NewAuditAssignmentsQueryHandler() queries.AuditAssignmentsQueryHandler {
	return queries.NewAuditAssignmentsQueryHandler(c.gormDB, services.NewConstraintChecker())
}

// NewHTTPServer builds the HTTP adapter over every use case.
func (c *CompositionRoot) NewHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCouriers:       c.NewCreateCouriersCommandHandler(),
		CreateOrders:         c.NewCreateOrdersCommandHandler(),
		AssignOrders:         c.NewAssignOrdersCommandHandler(),
		CompleteOrder:        c.NewCompleteOrderCommandHandler(),
		UpdateCourierProfile: c.NewUpdateCourierProfileCommandHandler(),
		GetCourierStats:      c.NewGetCourierStatsQueryHandler(),
	})
}

// NewJobManager builds the scheduled jobs from the configured schedules.
func (c *CompositionRoot) NewJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.NewAuditAssignmentsQueryHandler(), c.cfg.AuditSchedule, logger)
}

func (c *CompositionRoot) crossAggregateFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

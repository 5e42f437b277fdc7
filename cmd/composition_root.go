package cmd

import (
	"log/slog"
	"time"

	httpin "boutique/internal/adapters/in/http"
	"boutique/internal/adapters/out/persistence"
	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/core/ports"
	"boutique/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *persistence.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      func() time.Time
}

// NewCompositionRoot wires the use cases over gormDB. A nil clock means
// time.Now.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	clock func() time.Time,
) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = time.Now
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: persistence.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
		clock:      clock,
	}
}

func (c *CompositionRoot) Config() Config {
	return c.cfg
}

func (c *CompositionRoot) uowFactoryFunc() FuncUoWFactory {
	return func() commands.UoW {
		return c.uowFactory.Create()
	}
}

func (c *CompositionRoot) clientUoWFactory() FuncClientUoWFactory {
	return func() commands.ClientUoW {
		return c.uowFactory.Create()
	}
}

func (c *CompositionRoot) workOrderUoWFactory() FuncWorkOrderUoWFactory {
	return func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	}
}

// Repositories outside a transaction read straight from the pool.
func (c *CompositionRoot) clientReader() queries.ClientReader {
	return c.uowFactory.Create().ClientRepository()
}

func (c *CompositionRoot) workOrderReader() queries.WorkOrderReader {
	return c.uowFactory.Create().WorkOrderRepository()
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory(), commands.Clock(c.clock))
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory(), commands.Clock(c.clock))
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.uowFactoryFunc(), commands.Clock(c.clock))
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	return commands.NewUpdateWorkOrderCommandHandler(c.workOrderUoWFactory(), commands.Clock(c.clock))
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	return commands.NewDeleteWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateResetDataCommandHandler() commands.ResetDataCommandHandler {
	return commands.NewResetDataCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.clientReader())
}

func (c *CompositionRoot) CreateGetClientWorkOrdersQueryHandler() queries.GetClientWorkOrdersQueryHandler {
	return queries.NewGetClientWorkOrdersQueryHandler(c.clientReader(), c.workOrderReader())
}

func (c *CompositionRoot) CreateGetClientSummaryQueryHandler() queries.GetClientSummaryQueryHandler {
	return queries.NewGetClientSummaryQueryHandler(c.clientReader(), c.workOrderReader())
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.clientReader())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.workOrderReader())
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() queries.ListWorkOrdersQueryHandler {
	return queries.NewListWorkOrdersQueryHandler(c.workOrderReader())
}

func (c *CompositionRoot) CreateGetPrioritizedWorkOrdersQueryHandler() queries.GetPrioritizedWorkOrdersQueryHandler {
	return queries.NewGetPrioritizedWorkOrdersQueryHandler(c.workOrderReader())
}

func (c *CompositionRoot) CreateFilterWorkOrdersQueryHandler() queries.FilterWorkOrdersQueryHandler {
	return queries.NewFilterWorkOrdersQueryHandler(c.workOrderReader(), queries.Clock(c.clock))
}

func (c *CompositionRoot) CreateGetWorkOrderBucketQueryHandler() queries.GetWorkOrderBucketQueryHandler {
	return queries.NewGetWorkOrderBucketQueryHandler(c.workOrderReader(), queries.Clock(c.clock))
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.workOrderReader(), queries.Clock(c.clock))
}

func (c *CompositionRoot) CreateGetRecentActivityQueryHandler() queries.GetRecentActivityQueryHandler {
	return queries.NewGetRecentActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentWorkOrdersQueryHandler() queries.GetRecentWorkOrdersQueryHandler {
	return queries.NewGetRecentWorkOrdersQueryHandler(c.gormDB, queries.Clock(c.clock))
}

func (c *CompositionRoot) CreateGetStatusInfoQueryHandler() queries.GetStatusInfoQueryHandler {
	return queries.NewGetStatusInfoQueryHandler()
}

func (c *CompositionRoot) CreateSearchWorkOrdersQueryHandler() queries.SearchWorkOrdersQueryHandler {
	return queries.NewSearchWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchClientsQueryHandler() queries.SearchClientsQueryHandler {
	return queries.NewSearchClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminStatsQueryHandler() queries.GetAdminStatsQueryHandler {
	return queries.NewGetAdminStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateClient:    c.CreateCreateClientCommandHandler(),
		UpdateClient:    c.CreateUpdateClientCommandHandler(),
		DeleteClient:    c.CreateDeleteClientCommandHandler(),
		CreateWorkOrder: c.CreateCreateWorkOrderCommandHandler(),
		UpdateWorkOrder: c.CreateUpdateWorkOrderCommandHandler(),
		DeleteWorkOrder: c.CreateDeleteWorkOrderCommandHandler(),
		ResetData:       c.CreateResetDataCommandHandler(),

		GetClient:           c.CreateGetClientQueryHandler(),
		GetClientWorkOrders: c.CreateGetClientWorkOrdersQueryHandler(),
		GetClientSummary:    c.CreateGetClientSummaryQueryHandler(),
		ListClients:         c.CreateListClientsQueryHandler(),
		GetWorkOrder:        c.CreateGetWorkOrderQueryHandler(),
		ListWorkOrders:      c.CreateListWorkOrdersQueryHandler(),
		PrioritizedOrders:   c.CreateGetPrioritizedWorkOrdersQueryHandler(),
		FilterWorkOrders:    c.CreateFilterWorkOrdersQueryHandler(),
		WorkOrderBucket:     c.CreateGetWorkOrderBucketQueryHandler(),
		DashboardSummary:    c.CreateGetDashboardSummaryQueryHandler(),
		RecentActivity:      c.CreateGetRecentActivityQueryHandler(),
		RecentWorkOrders:    c.CreateGetRecentWorkOrdersQueryHandler(),
		StatusInfo:          c.CreateGetStatusInfoQueryHandler(),
		SearchWorkOrders:    c.CreateSearchWorkOrdersQueryHandler(),
		SearchClients:       c.CreateSearchClientsQueryHandler(),
		AdminStats:          c.CreateGetAdminStatsQueryHandler(),
	}, c.clock, c.logger)
}

// CreateJobManager builds the alert jobs on the configured schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDashboardSummaryQueryHandler(),
		c.CreateGetWorkOrderBucketQueryHandler(),
		c.cfg.AlertsSchedule,
		c.logger,
	)
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

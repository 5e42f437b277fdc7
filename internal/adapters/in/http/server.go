package http

import (
	"log/slog"
	"time"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateClient    commands.CreateClientCommandHandler
	UpdateClient    commands.UpdateClientCommandHandler
	DeleteClient    commands.DeleteClientCommandHandler
	CreateWorkOrder commands.CreateWorkOrderCommandHandler
	UpdateWorkOrder commands.UpdateWorkOrderCommandHandler
	DeleteWorkOrder commands.DeleteWorkOrderCommandHandler
	ResetData       commands.ResetDataCommandHandler

	// Query handlers
	GetClient           queries.GetClientQueryHandler
	GetClientWorkOrders queries.GetClientWorkOrdersQueryHandler
	GetClientSummary    queries.GetClientSummaryQueryHandler
	ListClients         queries.ListClientsQueryHandler
	GetWorkOrder        queries.GetWorkOrderQueryHandler
	ListWorkOrders      queries.ListWorkOrdersQueryHandler
	PrioritizedOrders   queries.GetPrioritizedWorkOrdersQueryHandler
	FilterWorkOrders    queries.FilterWorkOrdersQueryHandler
	WorkOrderBucket     queries.GetWorkOrderBucketQueryHandler
	DashboardSummary    queries.GetDashboardSummaryQueryHandler
	RecentActivity      queries.GetRecentActivityQueryHandler
	RecentWorkOrders    queries.GetRecentWorkOrdersQueryHandler
	StatusInfo          queries.GetStatusInfoQueryHandler
	SearchWorkOrders    queries.SearchWorkOrdersQueryHandler
	SearchClients       queries.SearchClientsQueryHandler
	AdminStats          queries.GetAdminStatsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	clock  func() time.Time
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The clock decides which orders are reported as overdue.
func NewServer(handlers Handlers, clock func() time.Time, logger *slog.Logger) *Server {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		clock:  clock,
		logger: logger.With("component", "http"),
	}
}

package jobs

import (
	"fmt"
	"log/slog"

	"boutique/internal/core/application/usecases/queries"
)

// DefaultSchedule runs the jobs at the start of every hour.
const DefaultSchedule = "0 0 * * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	alertsJob  *AlertsJob
	dueSoonJob *DueSoonJob
}

// NewJobManager creates the alert jobs sharing one schedule. An empty
// schedule means DefaultSchedule.
func NewJobManager(
	dashboardHandler queries.GetDashboardSummaryQueryHandler,
	bucketHandler queries.GetWorkOrderBucketQueryHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &JobManager{
		alertsJob:  NewAlertsJob(dashboardHandler, schedule, logger),
		dueSoonJob: NewDueSoonJob(bucketHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.alertsJob.Start(); err != nil {
		return fmt.Errorf("failed to start alerts job: %w", err)
	}

	if err := jm.dueSoonJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.alertsJob.Stop()
		return fmt.Errorf("failed to start due soon job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dueSoonJob.Stop()
	jm.alertsJob.Stop()
}

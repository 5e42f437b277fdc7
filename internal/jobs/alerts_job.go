package jobs

import (
	"context"
	"log/slog"

	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AlertsJob logs the dashboard alerts on a schedule.
type AlertsJob struct {
	handler  queries.GetDashboardSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAlertsJob creates a job evaluating the dashboard on schedule, a cron
// expression with a leading seconds field.
func NewAlertsJob(handler queries.GetDashboardSummaryQueryHandler, schedule string, logger *slog.Logger) *AlertsJob {
	return &AlertsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "alerts_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *AlertsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Alerts job started", "schedule", j.schedule)
	return nil
}

// Run evaluates the dashboard once. Critical and warning alerts are logged
// at warn level.
func (j *AlertsJob) Run(ctx context.Context) {
	resp, err := j.handler.Handle(ctx, queries.NewGetDashboardSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Alerts job failed", "error", err)
		return
	}

	for _, a := range resp.Alerts.Alerts {
		level := slog.LevelInfo
		if a.Type != services.AlertInfo {
			level = slog.LevelWarn
		}
		j.logger.Log(ctx, level, a.Title,
			"type", string(a.Type),
			"count", a.Count,
			"action", a.Action,
		)
	}
}

// Stop stops the scheduler. Running evaluations finish first.
func (j *AlertsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Alerts job stopped")
}

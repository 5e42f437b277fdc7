package jobs

import (
	"context"
	"log/slog"
	"time"

	"boutique/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DueSoonJob logs every active work order expected within the next day.
type DueSoonJob struct {
	handler  queries.GetWorkOrderBucketQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDueSoonJob(handler queries.GetWorkOrderBucketQueryHandler, schedule string, logger *slog.Logger) *DueSoonJob {
	return &DueSoonJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "due_soon_job"),
	}
}

func (j *DueSoonJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due soon job started", "schedule", j.schedule)
	return nil
}

func (j *DueSoonJob) Run(ctx context.Context) {
	query, err := queries.NewGetWorkOrderBucketQuery(queries.BucketDueSoon)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due soon job failed", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due soon job failed", "error", err)
		return
	}

	for _, w := range orders {
		j.logger.InfoContext(ctx, "Work order due soon",
			"work_order_id", w.ID(),
			"client_id", w.ClientID(),
			"status", w.Status().String(),
			"expected_delivery_date", w.ExpectedDeliveryDate().Format(time.RFC3339),
		)
	}
}

func (j *DueSoonJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Due soon job stopped")
}

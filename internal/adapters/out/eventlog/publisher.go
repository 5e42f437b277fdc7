// Package eventlog writes work order status changes to the structured log.
// It is used when no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"boutique/internal/core/domain/model/workorder"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...workorder.StatusChanged) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, e.EventName(),
			"event_id", e.EventID.String(),
			"work_order_id", e.WorkOrderID,
			"client_id", e.ClientID,
			"from", e.From.String(),
			"to", e.To.String(),
			"occurred_at", e.OccurredAt,
		)
	}
	return nil
}

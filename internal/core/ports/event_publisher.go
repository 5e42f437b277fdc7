package ports

import (
	"context"

	"boutique/internal/core/domain/model/workorder"
)

// EventPublisher delivers work order status changes to interested parties.
type EventPublisher interface {
	Publish(ctx context.Context, events ...workorder.StatusChanged) error
}

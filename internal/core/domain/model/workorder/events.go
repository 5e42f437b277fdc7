package workorder

import (
	"time"

	"github.com/google/uuid"
)

// StatusChanged is recorded whenever a work order moves to a different status.
type StatusChanged struct {
	EventID     uuid.UUID
	WorkOrderID int64
	ClientID    int64
	From        Status
	To          Status
	OccurredAt  time.Time
}

// EventName is used as the message key type by publishers.
func (e StatusChanged) EventName() string {
	return "work_order.status_changed"
}

package eventlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"boutique/internal/adapters/out/eventlog"
	"boutique/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p := eventlog.NewPublisher(logger)

	err := p.Publish(context.Background(), workorder.StatusChanged{
		EventID:     uuid.New(),
		WorkOrderID: 12,
		ClientID:    3,
		From:        workorder.DeliveredPaymentPending,
		To:          workorder.DeliveredPaid,
		OccurredAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "work_order.status_changed", line["msg"])
	assert.Equal(t, "event_log", line["component"])
	assert.EqualValues(t, 12, line["work_order_id"])
	assert.Equal(t, "Delivered - Fully Paid", line["to"])
}

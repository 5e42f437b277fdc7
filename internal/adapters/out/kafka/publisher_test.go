package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"boutique/internal/adapters/out/kafka"
	"boutique/internal/core/domain/model/workorder"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusChanged(id int64, from, to workorder.Status) workorder.StatusChanged {
	return workorder.StatusChanged{
		EventID:     uuid.New(),
		WorkOrderID: id,
		ClientID:    7,
		From:        from,
		To:          to,
		OccurredAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var msg map[string]any
		if err := json.Unmarshal(val, &msg); err != nil {
			return err
		}
		if msg["to_status"] != "Started" || msg["from_status"] != "Order Placed" {
			return errors.New("unexpected statuses")
		}
		if msg["event"] != "work_order.status_changed" {
			return errors.New("unexpected event name")
		}
		return nil
	})
	producer.ExpectSendMessageAndSucceed()

	p := kafka.NewPublisherWithProducer(producer, "work-orders", nil)
	err := p.Publish(context.Background(),
		statusChanged(1, workorder.Placed, workorder.Started),
		statusChanged(2, workorder.Finished, workorder.DeliveredPaid),
	)

	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := kafka.NewPublisherWithProducer(producer, "work-orders", nil)
	err := p.Publish(context.Background(), statusChanged(1, workorder.Placed, workorder.Started))

	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublisher_NoEvents(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())

	p := kafka.NewPublisherWithProducer(producer, "work-orders", nil)

	assert.NoError(t, p.Publish(context.Background()))
	require.NoError(t, p.Close())
}

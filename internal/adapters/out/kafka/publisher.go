// Package kafka publishes work order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"boutique/internal/core/domain/model/workorder"

	"github.com/IBM/sarama"
)

// statusChangedMessage is the JSON value of a published message.
type statusChangedMessage struct {
	EventID     string    `json:"event_id"`
	Event       string    `json:"event"`
	WorkOrderID int64     `json:"work_order_id"`
	ClientID    int64     `json:"client_id"`
	From        string    `json:"from_status"`
	To          string    `json:"to_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher sends one message per event, keyed by work order id so that
// the changes of one order keep their order within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewPublisher connects a synchronous producer to brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher", "topic", topic),
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...workorder.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(statusChangedMessage{
			EventID:     e.EventID.String(),
			Event:       e.EventName(),
			WorkOrderID: e.WorkOrderID,
			ClientID:    e.ClientID,
			From:        e.From.String(),
			To:          e.To.String(),
			OccurredAt:  e.OccurredAt.UTC(),
		})
		if err != nil {
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(e.WorkOrderID, 10)),
			Value: sarama.ByteEncoder(value),
			Headers: []sarama.RecordHeader{
				{Key: []byte("event"), Value: []byte(e.EventName())},
			},
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("send %d status change message(s): %w", len(msgs), err)
	}

	p.logger.DebugContext(ctx, "status changes published", "count", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

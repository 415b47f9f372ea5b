package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/kelompok6/retail-pos/pkg/logger"
)

// EventHandler processes a single sale completed event.
type EventHandler func(ctx context.Context, event SaleCompletedEvent) error

// Consumer wraps a Kafka consumer group subscribed to the sale topic.
type Consumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler EventHandler
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(brokers []string, groupID string, handler EventHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Msg("Kafka consumer initialized")

	return &Consumer{
		group:   group,
		topics:  []string{TopicSaleCompleted},
		handler: handler,
	}, nil
}

// Start consumes until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{consumer: c}

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info().Msg("Consumer context cancelled, stopping")
			return c.group.Close()
		default:
			if err := c.group.Consume(ctx, c.topics, handler); err != nil {
				logger.Logger.Error().Err(err).Msg("Error from consumer")
			}
		}
	}
}

type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event SaleCompletedEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("topic", message.Topic).
				Int64("offset", message.Offset).
				Msg("Failed to decode event, skipping")
			session.MarkMessage(message, "")
			continue
		}

		if err := h.consumer.handler(session.Context(), event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("event_id", event.EventID).
				Msg("Event handler failed")
			// Mark anyway: the counters are advisory, not a source of truth.
		}
		session.MarkMessage(message, "")
	}
	return nil
}

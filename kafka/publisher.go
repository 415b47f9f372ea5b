package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelompok6/retail-pos/pkg/logger"
)

// Publisher wraps a synchronous Kafka producer.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishSaleCompleted publishes a sale completed event with tracing. The
// checkout path calls this after the commit; a publish failure is reported to
// the caller for logging but must never fail the sale.
func (p *Publisher) PublishSaleCompleted(ctx context.Context, event SaleCompletedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	_, span := tracer.Start(ctx, "kafka.publish.sale_completed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicSaleCompleted),
			attribute.String("event.type", EventTypeSaleCompleted),
			attribute.String("sale.id", event.SaleID),
			attribute.Int("sale.items", len(event.Items)),
		),
	)
	defer span.End()

	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypeSaleCompleted
	event.Timestamp = time.Now()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: TopicSaleCompleted,
		Key:   sarama.StringEncoder(event.SaleID),
		Value: sarama.ByteEncoder(eventBytes),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		return fmt.Errorf("failed to publish sale completed event: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("sale_id", event.SaleID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Sale completed event published")

	return nil
}

// Close shuts down the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

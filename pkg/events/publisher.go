package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"dandee/pkg/logger"
)

// Publisher emits domain events to Kafka on a best-effort basis. A nil
// Publisher is valid and drops everything, so callers never guard emission
// behind configuration checks.
type Publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
	source string
}

// NewPublisher returns nil when no brokers are configured.
func NewPublisher(log *logger.Logger, brokers []string, topic, source string) *Publisher {
	if len(brokers) == 0 {
		log.Warn("kafka brokers not configured, domain events disabled")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Compression:  compress.Snappy,
		BatchTimeout: 50 * time.Millisecond,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}

	return &Publisher{writer: writer, log: log, source: source}
}

type envelope struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Publish serializes the payload and writes it keyed for partition affinity.
// Failures are logged and swallowed; event emission never fails a request.
func (p *Publisher) Publish(ctx context.Context, key, eventType string, payload any) {
	if p == nil {
		return
	}

	event := envelope{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Source:    p.source,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to serialize domain event", "event_type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.EventID)},
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "source", Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish domain event", "event_type", eventType, "key", key, "error", err)
		return
	}

	p.log.Debug("published domain event", "event_type", eventType, "key", key)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		p.log.Error("failed to close kafka writer", "error", err)
	}
}

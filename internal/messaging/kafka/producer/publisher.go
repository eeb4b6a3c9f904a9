package producer

import (
	"context"
	"encoding/json"

	"go-guardconsole/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishCacheInvalidated(ctx context.Context, event events.CacheInvalidatedEvent) error {
	if event.EventType == "" {
		event.EventType = events.CacheInvalidatedEventType
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return publishEvent(ctx, p.writer, events.CacheInvalidatedTopic, event.Prefix, event.EventType, payload)
}

func publishEvent(ctx context.Context, writer MessageWriter, topic, key, eventType string, payload []byte) error {
	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}

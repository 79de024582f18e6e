package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

const publishTimeout = 5 * time.Second

// InquiryEventMessage is the payload written to the event channel.
type InquiryEventMessage struct {
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	Version     int             `json:"version"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Data        json.RawMessage `json:"data"`
}

// InquiryEventHandler is a callback for messages received from the channel.
type InquiryEventHandler func(ctx context.Context, msg InquiryEventMessage)

// RedisInquiryEventBus mirrors committed inquiry events onto a Redis Pub/Sub
// channel so other services (WhatsApp bot, dashboards) can react to them.
type RedisInquiryEventBus struct {
	client  *redis.Client
	channel string
	logger  logger.Interface
}

func NewRedisInquiryEventBus(client *redis.Client, channel string, logger logger.Interface) *RedisInquiryEventBus {
	return &RedisInquiryEventBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Register subscribes the bus to every domain event.
func (b *RedisInquiryEventBus) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.AllEvents, b)
}

func (b *RedisInquiryEventBus) CanHandle(string) bool {
	return true
}

func (b *RedisInquiryEventBus) Handle(event events.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return b.Publish(ctx, event)
}

func (b *RedisInquiryEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	msg, err := NewInquiryEventMessage(event)
	if err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish inquiry event",
			"inquiry_id", msg.AggregateID,
			"event_type", msg.EventType,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("inquiry event published",
		"inquiry_id", msg.AggregateID,
		"event_type", msg.EventType,
		"channel", b.channel,
	)
	return nil
}

// Subscribe blocks, calling handler for each message until ctx is done.
func (b *RedisInquiryEventBus) Subscribe(ctx context.Context, handler InquiryEventHandler) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to inquiry events", "channel", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case m, ok := <-ch:
			if !ok {
				b.logger.Warnw("inquiry event channel closed")
				return nil
			}

			var msg InquiryEventMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				b.logger.Warnw("failed to unmarshal inquiry event",
					"payload", m.Payload,
					"error", err,
				)
				continue
			}
			handler(ctx, msg)
		}
	}
}

// NewInquiryEventMessage wraps a domain event; Data is the event's own JSON.
func NewInquiryEventMessage(event events.DomainEvent) (InquiryEventMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return InquiryEventMessage{}, fmt.Errorf("failed to marshal %s event: %w", event.GetEventType(), err)
	}
	return InquiryEventMessage{
		EventType:   event.GetEventType(),
		AggregateID: event.GetAggregateID(),
		Version:     event.GetVersion(),
		OccurredAt:  event.GetOccurredAt(),
		Data:        data,
	}, nil
}

package events

import (
	"time"
)

// DomainEvent is a fact raised by an aggregate after a committed change.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
	// GetVersion is the aggregate version the event was raised at.
	GetVersion() int
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time, version int) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
		Version:     version,
	}
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BaseEvent) GetVersion() int {
	return e.Version
}

type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

type EventSubscriber interface {
	// Subscribe registers handler for eventType; AllEvents subscribes to everything.
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

type EventDispatcher interface {
	EventPublisher
	EventSubscriber
	Start() error
	Stop() error
}

// AllEvents is the wildcard event type accepted by Subscribe.
const AllEvents = "*"

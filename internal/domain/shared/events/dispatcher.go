package events

import (
	"fmt"
	"sync"

	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// InMemoryEventDispatcher fans events out to subscribers on a single
// background goroutine. Publishing never blocks the caller: a full buffer
// drops the event with an error.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		logger:   log,
	}
}

func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Unsubscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, exists := d.handlers[eventType]
	if !exists {
		return nil
	}

	kept := make([]EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != handler {
			kept = append(kept, h)
		}
	}

	if len(kept) == 0 {
		delete(d.handlers, eventType)
	} else {
		d.handlers[eventType] = kept
	}
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop drains buffered events and waits for their handlers to finish.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.handlers[event.GetEventType()])+len(d.handlers[AllEvents]))
	handlers = append(handlers, d.handlers[event.GetEventType()]...)
	handlers = append(handlers, d.handlers[AllEvents]...)
	d.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.GetEventType()) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					d.logger.Errorw("event handler panicked",
						"event_type", event.GetEventType(),
						"aggregate_id", event.GetAggregateID(),
						"panic", r,
					)
				}
			}()
			if err := h.Handle(event); err != nil {
				d.logger.Warnw("event handler failed",
					"event_type", event.GetEventType(),
					"aggregate_id", event.GetAggregateID(),
					"error", err,
				)
			}
		}()
	}
}

// SimpleEventHandler adapts a function to EventHandler.
type SimpleEventHandler struct {
	eventType string
	handler   func(DomainEvent) error
}

func NewSimpleEventHandler(eventType string, handler func(DomainEvent) error) *SimpleEventHandler {
	return &SimpleEventHandler{
		eventType: eventType,
		handler:   handler,
	}
}

func (h *SimpleEventHandler) Handle(event DomainEvent) error {
	if h.handler != nil {
		return h.handler(event)
	}
	return nil
}

func (h *SimpleEventHandler) CanHandle(eventType string) bool {
	return h.eventType == AllEvents || h.eventType == eventType
}

// Package notification tells agents about work handed to them.
package notification

import (
	"context"
	"time"

	"github.com/instamakaan/instamakaan/internal/application/notification/usecases"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

// AssignmentSubscriber turns inquiry.assigned events into emails.
type AssignmentSubscriber struct {
	notify usecases.NotifyAssignmentExecutor
	logger logger.Interface
}

func NewAssignmentSubscriber(notify usecases.NotifyAssignmentExecutor, logger logger.Interface) *AssignmentSubscriber {
	return &AssignmentSubscriber{notify: notify, logger: logger}
}

// Register subscribes to the dispatcher.
func (s *AssignmentSubscriber) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(inquiry.EventTypeAssigned, s)
}

func (s *AssignmentSubscriber) CanHandle(eventType string) bool {
	return eventType == inquiry.EventTypeAssigned
}

func (s *AssignmentSubscriber) Handle(event events.DomainEvent) error {
	var assigned inquiry.AssignedEvent
	switch e := event.(type) {
	case inquiry.AssignedEvent:
		assigned = e
	case *inquiry.AssignedEvent:
		assigned = *e
	default:
		s.logger.Warnw("unexpected event for assignment notifier", "event_type", event.GetEventType())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	return s.notify.Execute(ctx, usecases.NotifyAssignmentCommand{
		InquiryID:       assigned.GetAggregateID(),
		AgentID:         assigned.AgentID,
		PreviousAgentID: assigned.PreviousAgentID,
		CustomerName:    assigned.CustomerName,
		CustomerPhone:   assigned.CustomerPhone,
		InquiryType:     assigned.InquiryType,
		Message:         assigned.Message,
	})
}

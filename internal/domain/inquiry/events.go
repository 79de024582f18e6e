package inquiry

import (
	"time"

	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
)

const (
	EventTypeCreated       = "inquiry.created"
	EventTypeAssigned      = "inquiry.assigned"
	EventTypeUnassigned    = "inquiry.unassigned"
	EventTypeStatusChanged = "inquiry.status_changed"
	EventTypeNoteAdded     = "inquiry.note_added"
)

type CreatedEvent struct {
	events.BaseEvent
	InquiryType string `json:"inquiry_type"`
	ListingID   string `json:"listing_id,omitempty"`
	SourcePage  string `json:"source_page,omitempty"`
}

type AssignedEvent struct {
	events.BaseEvent
	AgentID         string `json:"agent_id"`
	AgentName       string `json:"agent_name"`
	PreviousAgentID string `json:"previous_agent_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	InquiryType     string `json:"inquiry_type"`
	Message         string `json:"message,omitempty"`
}

type UnassignedEvent struct {
	events.BaseEvent
	AgentID string `json:"agent_id"`
}

type StatusChangedEvent struct {
	events.BaseEvent
	From     string     `json:"from"`
	To       string     `json:"to"`
	ActorID  string     `json:"actor_id,omitempty"`
	AgentID  string     `json:"agent_id,omitempty"`
	Explicit bool       `json:"explicit"`
	Followup *time.Time `json:"next_followup_at,omitempty"`
}

type NoteAddedEvent struct {
	events.BaseEvent
	AuthorID string `json:"author_id,omitempty"`
}

func (i *Inquiry) base(eventType string, at time.Time) events.BaseEvent {
	return events.NewBaseEvent(i.id, eventType, at, i.version)
}

func (i *Inquiry) record(e events.DomainEvent) {
	i.events = append(i.events, e)
}

// PullEvents returns the events raised since the last call and clears them.
func (i *Inquiry) PullEvents() []events.DomainEvent {
	out := i.events
	i.events = nil
	return out
}

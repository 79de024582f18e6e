package dto

import (
	"time"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
)

type InquiryDTO struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Phone             string                 `json:"phone"`
	Email             string                 `json:"email,omitempty"`
	Message           string                 `json:"message,omitempty"`
	InquiryType       string                 `json:"inquiry_type"`
	SourcePage        string                 `json:"source_page,omitempty"`
	ListingID         string                 `json:"listing_id,omitempty"`
	ListingTitle      string                 `json:"listing_title,omitempty"`
	WhatsappOptIn     bool                   `json:"whatsapp_opt_in"`
	PreferredVisitAt  *time.Time             `json:"preferred_visit_at,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	Status            string                 `json:"status"`
	StatusLabel       string                 `json:"status_label"`
	AssignedAgentID   string                 `json:"assigned_agent_id,omitempty"`
	AssignedAgentName string                 `json:"assigned_agent_name,omitempty"`
	NeedsAssignment   bool                   `json:"needs_assignment"`
	Version           int                    `json:"version"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	ClosedAt          *time.Time             `json:"closed_at,omitempty"`
	NextFollowupAt    *time.Time             `json:"next_followup_at,omitempty"`
	ConversationLogs  []LogEntryDTO          `json:"conversation_logs,omitempty"`
}

type LogEntryDTO struct {
	ID              uint      `json:"id"`
	InquiryID       string    `json:"inquiry_id"`
	Kind            string    `json:"kind"`
	Message         string    `json:"message"`
	MessageHTML     string    `json:"message_html,omitempty"`
	Author          string    `json:"author"`
	AuthorID        string    `json:"author_id,omitempty"`
	AgentID         string    `json:"agent_id,omitempty"`
	ResultingStatus string    `json:"resulting_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// HTMLRenderer turns a note's markdown into sanitized HTML.
type HTMLRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

func ToInquiryDTO(i *inquiry.Inquiry) *InquiryDTO {
	if i == nil {
		return nil
	}

	label := string(i.Status())
	if i.Status().IsValid() {
		label = i.Status().Label()
	}

	return &InquiryDTO{
		ID:                i.ID(),
		Name:              i.Name(),
		Phone:             i.Phone(),
		Email:             i.Email(),
		Message:           i.Message(),
		InquiryType:       i.InquiryType().String(),
		SourcePage:        i.SourcePage(),
		ListingID:         i.ListingID(),
		WhatsappOptIn:     i.WhatsappOptIn(),
		PreferredVisitAt:  i.PreferredVisitAt(),
		Metadata:          i.Metadata(),
		Status:            i.Status().String(),
		StatusLabel:       label,
		AssignedAgentID:   i.AssignedAgentID(),
		AssignedAgentName: i.AssignedAgentName(),
		NeedsAssignment:   i.NeedsAssignment(),
		Version:           i.Version(),
		CreatedAt:         i.CreatedAt(),
		UpdatedAt:         i.UpdatedAt(),
		ClosedAt:          i.ClosedAt(),
		NextFollowupAt:    i.NextFollowupAt(),
	}
}

func ToInquiryDTOList(list []*inquiry.Inquiry) []*InquiryDTO {
	out := make([]*InquiryDTO, 0, len(list))
	for _, i := range list {
		out = append(out, ToInquiryDTO(i))
	}
	return out
}

// ToLogEntryDTO renders notes through r when it is non-nil. A rendering
// failure leaves MessageHTML empty; the raw message is always present.
func ToLogEntryDTO(e *inquiry.LogEntry, r HTMLRenderer) LogEntryDTO {
	d := LogEntryDTO{
		ID:        e.ID(),
		InquiryID: e.InquiryID(),
		Kind:      string(e.Kind()),
		Message:   e.Message(),
		Author:    e.Author().Name,
		AuthorID:  e.Author().ID,
		AgentID:   e.AgentID(),
		CreatedAt: e.CreatedAt(),
	}
	if e.HasResultingStatus() {
		d.ResultingStatus = e.ResultingStatus().String()
	}
	if r != nil && e.IsNote() {
		if html, err := r.ToHTMLSanitized(e.Message()); err == nil {
			d.MessageHTML = html
		}
	}
	return d
}

func ToLogEntryDTOs(entries []*inquiry.LogEntry, r HTMLRenderer) []LogEntryDTO {
	out := make([]LogEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToLogEntryDTO(e, r))
	}
	return out
}

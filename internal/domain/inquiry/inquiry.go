package inquiry

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/id"
)

const (
	maxNameLength    = 100
	maxMessageLength = 5000
	MaxNoteLength    = 5000
)

// Inquiry is a customer request moving through the assignment pipeline.
// Its status and assignment are only changed through the methods below,
// each of which returns the log entry the caller must persist with it.
type Inquiry struct {
	id                string
	name              string
	phone             string
	email             string
	message           string
	inquiryType       vo.InquiryType
	sourcePage        string
	listingID         string
	whatsappOptIn     bool
	preferredVisitAt  *time.Time
	metadata          map[string]interface{}
	status            vo.Status
	assignedAgentID   string
	assignedAgentName string
	version           int
	loadedVersion     int
	createdAt         time.Time
	updatedAt         time.Time
	closedAt          *time.Time
	nextFollowupAt    *time.Time
	events            []events.DomainEvent
}

// NewInquiryParams carries a public form submission.
type NewInquiryParams struct {
	Name             string
	Phone            string
	Email            string
	Message          string
	InquiryType      vo.InquiryType
	SourcePage       string
	ListingID        string
	WhatsappOptIn    bool
	PreferredVisitAt *time.Time
	Metadata         map[string]interface{}
}

func NewInquiry(p NewInquiryParams) (*Inquiry, error) {
	name := strings.TrimSpace(p.Name)
	phone := strings.TrimSpace(p.Phone)
	email := strings.TrimSpace(p.Email)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("email is invalid")
		}
	}
	if utf8.RuneCountInString(p.Message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	inquiryType := p.InquiryType
	if inquiryType == "" {
		inquiryType = vo.TypeGeneral
	}

	inquiryID, err := id.NewInquiryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inquiry ID: %w", err)
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	now := biztime.NowUTC()
	i := &Inquiry{
		id:               inquiryID,
		name:             name,
		phone:            phone,
		email:            email,
		message:          strings.TrimSpace(p.Message),
		inquiryType:      inquiryType,
		sourcePage:       strings.TrimSpace(p.SourcePage),
		listingID:        strings.TrimSpace(p.ListingID),
		whatsappOptIn:    p.WhatsappOptIn,
		preferredVisitAt: p.PreferredVisitAt,
		metadata:         metadata,
		status:           vo.StatusNew,
		version:          1,
		loadedVersion:    1,
		createdAt:        now,
		updatedAt:        now,
	}

	i.record(CreatedEvent{
		BaseEvent:   i.base(EventTypeCreated, now),
		InquiryType: inquiryType.String(),
		ListingID:   i.listingID,
		SourcePage:  i.sourcePage,
	})

	return i, nil
}

// ReconstructInquiry rebuilds an inquiry from storage. The status is not
// validated here so that a corrupt row still loads and fails on transition.
func ReconstructInquiry(
	inquiryID string,
	name, phone, email, message string,
	inquiryType vo.InquiryType,
	sourcePage string,
	listingID string,
	whatsappOptIn bool,
	preferredVisitAt *time.Time,
	metadata map[string]interface{},
	status vo.Status,
	assignedAgentID, assignedAgentName string,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
	nextFollowupAt *time.Time,
) (*Inquiry, error) {
	if inquiryID == "" {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if version < 1 {
		return nil, fmt.Errorf("inquiry version must be positive")
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Inquiry{
		id:                inquiryID,
		name:              name,
		phone:             phone,
		email:             email,
		message:           message,
		inquiryType:       inquiryType,
		sourcePage:        sourcePage,
		listingID:         listingID,
		whatsappOptIn:     whatsappOptIn,
		preferredVisitAt:  preferredVisitAt,
		metadata:          metadata,
		status:            status,
		assignedAgentID:   assignedAgentID,
		assignedAgentName: assignedAgentName,
		version:           version,
		loadedVersion:     version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		closedAt:          closedAt,
		nextFollowupAt:    nextFollowupAt,
	}, nil
}

func (i *Inquiry) ID() string {
	return i.id
}

func (i *Inquiry) Name() string {
	return i.name
}

func (i *Inquiry) Phone() string {
	return i.phone
}

func (i *Inquiry) Email() string {
	return i.email
}

func (i *Inquiry) Message() string {
	return i.message
}

func (i *Inquiry) InquiryType() vo.InquiryType {
	return i.inquiryType
}

func (i *Inquiry) SourcePage() string {
	return i.sourcePage
}

func (i *Inquiry) ListingID() string {
	return i.listingID
}

func (i *Inquiry) WhatsappOptIn() bool {
	return i.whatsappOptIn
}

func (i *Inquiry) PreferredVisitAt() *time.Time {
	return i.preferredVisitAt
}

func (i *Inquiry) Status() vo.Status {
	return i.status
}

func (i *Inquiry) AssignedAgentID() string {
	return i.assignedAgentID
}

func (i *Inquiry) AssignedAgentName() string {
	return i.assignedAgentName
}

func (i *Inquiry) Version() int {
	return i.version
}

func (i *Inquiry) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Inquiry) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Inquiry) ClosedAt() *time.Time {
	return i.closedAt
}

// NextFollowupAt is when the holder plans to contact the customer again.
// It is cleared when the inquiry closes.
func (i *Inquiry) NextFollowupAt() *time.Time {
	return i.nextFollowupAt
}

// LoadedVersion is the version read from storage; Update matches on it.
func (i *Inquiry) LoadedVersion() int {
	return i.loadedVersion
}

func (i *Inquiry) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(i.metadata))
	for k, v := range i.metadata {
		out[k] = v
	}
	return out
}

func (i *Inquiry) IsAssigned() bool {
	return i.assignedAgentID != ""
}

func (i *Inquiry) IsAssignedTo(agentID string) bool {
	return agentID != "" && i.assignedAgentID == agentID
}

// NeedsAssignment is true for work in progress that lost its agent.
func (i *Inquiry) NeedsAssignment() bool {
	return !i.IsAssigned() && !i.status.IsNew() && !i.status.IsClosed()
}

// AssignTo hands the inquiry to an agent. A new inquiry moves to assigned in
// the same step. Assigning to the current holder changes nothing and
// returns a nil entry.
func (i *Inquiry) AssignTo(agentID, agentName string) (*LogEntry, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID is required")
	}
	if i.status.IsClosed() {
		return nil, ErrTerminalState
	}
	if !i.status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(i.status))
	}
	if i.assignedAgentID == agentID {
		return nil, nil
	}

	now := biztime.NowUTC()
	previous := i.assignedAgentID
	wasNew := i.status.IsNew()

	message := fmt.Sprintf("Reassigned to %s", agentName)
	if previous == "" {
		message = fmt.Sprintf("Assigned to %s", agentName)
	}

	entry := newLogEntry(i.id, KindAssignment, message, SystemAuthor, now)
	entry.agentID = agentID

	if wasNew {
		i.status = vo.StatusAssigned
		entry.resultingStatus = vo.StatusAssigned
	}
	i.assignedAgentID = agentID
	i.assignedAgentName = agentName
	i.touch(now)

	i.record(AssignedEvent{
		BaseEvent:       i.base(EventTypeAssigned, now),
		AgentID:         agentID,
		AgentName:       agentName,
		PreviousAgentID: previous,
		CustomerName:    i.name,
		CustomerPhone:   i.phone,
		InquiryType:     i.inquiryType.String(),
		Message:         i.message,
	})
	if wasNew {
		i.record(StatusChangedEvent{
			BaseEvent: i.base(EventTypeStatusChanged, now),
			From:      vo.StatusNew.String(),
			To:        vo.StatusAssigned.String(),
			AgentID:   agentID,
		})
	}

	return entry, nil
}

// Unassign clears the current agent and keeps the status.
func (i *Inquiry) Unassign() (*LogEntry, error) {
	if i.status.IsClosed() {
		return nil, ErrTerminalState
	}
	if !i.IsAssigned() {
		return nil, ErrNotAssigned
	}

	now := biztime.NowUTC()
	entry := newLogEntry(i.id, KindUnassignment, fmt.Sprintf("Unassigned from %s", i.assignedAgentName), SystemAuthor, now)
	entry.agentID = i.assignedAgentID

	i.record(UnassignedEvent{
		BaseEvent: i.base(EventTypeUnassigned, now),
		AgentID:   i.assignedAgentID,
	})

	i.assignedAgentID = ""
	i.assignedAgentName = ""
	i.touch(now)

	return entry, nil
}

// Advance moves the inquiry to the next pipeline stage. Leaving new is
// reserved to AssignTo so that a new inquiry never gains a status without
// an agent.
func (i *Inquiry) Advance(author Author, message string, opts ...TransitionOption) (*LogEntry, error) {
	if i.status.IsClosed() {
		return nil, ErrTerminalState
	}
	next, err := i.status.Next()
	if err != nil {
		return nil, err
	}
	if i.status.IsNew() {
		return nil, fmt.Errorf("%w: inquiry must be assigned before it can advance", ErrInvalidTransition)
	}

	o, err := transitionOptionsFor(next, opts)
	if err != nil {
		return nil, err
	}
	return i.moveTo(next, author, message, false, o), nil
}

// SetStatus jumps to any stage other than new, backwards included. A new
// inquiry can only be cancelled (closed); every other stage needs an agent.
func (i *Inquiry) SetStatus(target vo.Status, author Author, message string, opts ...TransitionOption) (*LogEntry, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(target))
	}
	if target.IsNew() {
		return nil, fmt.Errorf("%w: status cannot be set back to new", ErrInvalidTransition)
	}
	if i.status.IsClosed() {
		return nil, ErrTerminalState
	}
	if !i.status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(i.status))
	}
	if i.status.IsNew() && !target.IsClosed() {
		return nil, fmt.Errorf("%w: inquiry must be assigned before its status can change, except to cancel it", ErrInvalidTransition)
	}
	if target == i.status {
		return nil, fmt.Errorf("%w: inquiry is already %s", ErrInvalidTransition, target)
	}

	o, err := transitionOptionsFor(target, opts)
	if err != nil {
		return nil, err
	}
	return i.moveTo(target, author, message, true, o), nil
}

// TransitionOption adjusts a status change.
type TransitionOption func(*transitionOptions)

type transitionOptions struct {
	followup *time.Time
}

// WithFollowup schedules the next customer contact together with the
// status change. Without it the existing schedule is kept.
func WithFollowup(at time.Time) TransitionOption {
	return func(o *transitionOptions) {
		utc := at.UTC()
		o.followup = &utc
	}
}

func transitionOptionsFor(target vo.Status, opts []TransitionOption) (transitionOptions, error) {
	var o transitionOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.followup == nil {
		return o, nil
	}
	if o.followup.IsZero() {
		return o, ErrInvalidFollowup
	}
	if target.IsClosed() {
		return o, fmt.Errorf("%w: a closed inquiry has no follow-up", ErrInvalidFollowup)
	}
	return o, nil
}

func (i *Inquiry) moveTo(target vo.Status, author Author, message string, explicit bool, o transitionOptions) *LogEntry {
	now := biztime.NowUTC()
	from := i.status

	message = strings.TrimSpace(message)
	if message == "" {
		message = fmt.Sprintf("Status updated to %s", target)
	}

	entry := newLogEntry(i.id, KindTransition, message, author, now)
	entry.resultingStatus = target
	entry.agentID = i.assignedAgentID

	i.status = target
	if o.followup != nil {
		i.nextFollowupAt = o.followup
	}
	if target.IsClosed() {
		i.closedAt = &now
		i.nextFollowupAt = nil
	}
	i.touch(now)

	i.record(StatusChangedEvent{
		BaseEvent: i.base(EventTypeStatusChanged, now),
		From:      from.String(),
		To:        target.String(),
		ActorID:   author.ID,
		AgentID:   i.assignedAgentID,
		Explicit:  explicit,
		Followup:  i.nextFollowupAt,
	})

	return entry
}

// AddNote appends free text without touching the status. The version still
// moves so concurrent writers on the same inquiry are ordered.
func (i *Inquiry) AddNote(author Author, text string) (*LogEntry, error) {
	if i.status.IsClosed() {
		return nil, ErrTerminalState
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}
	if utf8.RuneCountInString(text) > MaxNoteLength {
		return nil, fmt.Errorf("%w: maximum is %d characters", ErrNoteTooLong, MaxNoteLength)
	}

	now := biztime.NowUTC()
	entry := newLogEntry(i.id, KindNote, text, author, now)
	i.touch(now)

	i.record(NoteAddedEvent{
		BaseEvent: i.base(EventTypeNoteAdded, now),
		AuthorID:  author.ID,
	})

	return entry, nil
}

func (i *Inquiry) touch(now time.Time) {
	i.updatedAt = now
	i.version++
}

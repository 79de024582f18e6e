package inquiry

import (
	"fmt"
	"time"

	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
)

type LogEntryKind string

const (
	KindAssignment   LogEntryKind = "assignment"
	KindUnassignment LogEntryKind = "unassignment"
	KindTransition   LogEntryKind = "transition"
	KindNote         LogEntryKind = "note"
)

func (k LogEntryKind) IsValid() bool {
	switch k {
	case KindAssignment, KindUnassignment, KindTransition, KindNote:
		return true
	}
	return false
}

// Author is who wrote a log entry. ID is empty for entries the system writes.
type Author struct {
	ID   string
	Name string
}

// SystemAuthor signs assignment and unassignment entries.
var SystemAuthor = Author{Name: "System"}

// LogEntry is one immutable line of an inquiry's conversation log.
type LogEntry struct {
	id              uint
	inquiryID       string
	kind            LogEntryKind
	message         string
	author          Author
	agentID         string
	resultingStatus vo.Status
	createdAt       time.Time
}

func newLogEntry(inquiryID string, kind LogEntryKind, message string, author Author, now time.Time) *LogEntry {
	return &LogEntry{
		inquiryID: inquiryID,
		kind:      kind,
		message:   message,
		author:    author,
		createdAt: now,
	}
}

func ReconstructLogEntry(
	id uint,
	inquiryID string,
	kind LogEntryKind,
	message string,
	author Author,
	agentID string,
	resultingStatus vo.Status,
	createdAt time.Time,
) (*LogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("log entry ID cannot be zero")
	}
	if inquiryID == "" {
		return nil, fmt.Errorf("log entry inquiry ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid log entry kind: %s", kind)
	}

	return &LogEntry{
		id:              id,
		inquiryID:       inquiryID,
		kind:            kind,
		message:         message,
		author:          author,
		agentID:         agentID,
		resultingStatus: resultingStatus,
		createdAt:       createdAt,
	}, nil
}

func (e *LogEntry) ID() uint {
	return e.id
}

func (e *LogEntry) InquiryID() string {
	return e.inquiryID
}

func (e *LogEntry) Kind() LogEntryKind {
	return e.kind
}

func (e *LogEntry) Message() string {
	return e.message
}

func (e *LogEntry) Author() Author {
	return e.author
}

func (e *LogEntry) AgentID() string {
	return e.agentID
}

func (e *LogEntry) ResultingStatus() vo.Status {
	return e.resultingStatus
}

func (e *LogEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *LogEntry) IsNote() bool {
	return e.kind == KindNote
}

// HasResultingStatus reports whether the entry moved the inquiry to a new stage.
func (e *LogEntry) HasResultingStatus() bool {
	return e.resultingStatus != ""
}

// SetID is called once by the store after insert.
func (e *LogEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("log entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("log entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// ClampCreatedAt moves the timestamp forward to notBefore when the clock
// would otherwise place the entry before the inquiry's latest entry.
func (e *LogEntry) ClampCreatedAt(notBefore time.Time) {
	if e.createdAt.Before(notBefore) {
		e.createdAt = notBefore
	}
}

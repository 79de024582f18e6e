package inquiry

import (
	"context"
	"time"

	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
)

// Scope narrows aggregate queries. The zero value is global.
type Scope struct {
	// AgentID limits to inquiries currently assigned to the agent.
	AgentID string
	// ByListings limits to inquiries referencing one of ListingIDs; an empty
	// list then matches nothing.
	ByListings bool
	ListingIDs []string
}

func GlobalScope() Scope {
	return Scope{}
}

func AgentScope(agentID string) Scope {
	return Scope{AgentID: agentID}
}

func ListingScope(listingIDs []string) Scope {
	return Scope{ByListings: true, ListingIDs: listingIDs}
}

type Filter struct {
	Status      *vo.Status
	InquiryType *vo.InquiryType
	Scope       Scope
	// HandledByAgentID matches inquiries the agent holds now or held before.
	HandledByAgentID string
	NeedsAssignment  *bool
	CreatedSince     *time.Time
	// FollowupDueBefore matches open inquiries whose next follow-up is at
	// or before the given time.
	FollowupDueBefore *time.Time
	Page              int
	PageSize          int
}

type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	// GetByIDForUpdate loads the inquiry and locks its row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Inquiry, error)
	// Update persists the aggregate if the stored version still equals
	// inquiry.LoadedVersion(), otherwise ErrConcurrentModification.
	Update(ctx context.Context, inquiry *Inquiry) error
	// List returns a page ordered newest first and the total match count.
	List(ctx context.Context, filter Filter) ([]*Inquiry, int64, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	CountByStatus(ctx context.Context, scope Scope) (map[vo.Status]int64, error)
	CountByType(ctx context.Context, scope Scope) (map[vo.InquiryType]int64, error)
	CountOpenByAgent(ctx context.Context, agentID string) (int64, error)
	// CountHandledByAgent counts distinct inquiries ever assigned to the agent.
	CountHandledByAgent(ctx context.Context, agentID string) (int64, error)

	// AppendLog stores entry, assigning its id and clamping its timestamp so
	// it never precedes the inquiry's latest entry.
	AppendLog(ctx context.Context, entry *LogEntry) error
	// ListLogs returns the inquiry's entries ordered by created_at, id.
	ListLogs(ctx context.Context, inquiryID string) ([]*LogEntry, error)
	ListLogsForInquiries(ctx context.Context, inquiryIDs []string) (map[string][]*LogEntry, error)
}

package inquiry

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/usecases"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// CreateInquiryRequest is the public inquiry form.
type CreateInquiryRequest struct {
	Name             string                 `json:"name" binding:"required,max=100"`
	Phone            string                 `json:"phone" binding:"required,max=32"`
	Email            string                 `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Message          string                 `json:"message,omitempty" binding:"max=5000"`
	InquiryType      string                 `json:"inquiry_type,omitempty" binding:"max=50"`
	SourcePage       string                 `json:"source_page,omitempty" binding:"max=255"`
	ListingID        string                 `json:"listing_id,omitempty" binding:"max=64"`
	WhatsappOptIn    bool                   `json:"whatsapp_opt_in"`
	PreferredVisitAt *time.Time             `json:"preferred_visit_at,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

func (r *CreateInquiryRequest) ToCommand() usecases.CreateInquiryCommand {
	return usecases.CreateInquiryCommand{
		Name:             r.Name,
		Phone:            r.Phone,
		Email:            r.Email,
		Message:          r.Message,
		InquiryType:      r.InquiryType,
		SourcePage:       r.SourcePage,
		ListingID:        r.ListingID,
		WhatsappOptIn:    r.WhatsappOptIn,
		PreferredVisitAt: r.PreferredVisitAt,
		Metadata:         r.Metadata,
	}
}

type AssignInquiryRequest struct {
	AgentID string `json:"agent_id" binding:"required,max=64"`
}

type AdvanceStatusRequest struct {
	Message        string     `json:"message,omitempty" binding:"max=5000"`
	NextFollowupAt *time.Time `json:"next_followup_at,omitempty"`
}

type SetStatusRequest struct {
	Status         string     `json:"status" binding:"required,max=32"`
	Message        string     `json:"message,omitempty" binding:"max=5000"`
	NextFollowupAt *time.Time `json:"next_followup_at,omitempty"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type ListInquiriesRequest struct {
	Page              int
	PageSize          int
	Status            string
	InquiryType       string
	AgentID           string
	ListingID         string
	NeedsAssignment   *bool
	FollowupDueBefore *time.Time
}

func (r *ListInquiriesRequest) ToQuery(actor authorization.Actor) usecases.ListInquiriesQuery {
	return usecases.ListInquiriesQuery{
		Actor:             actor,
		Status:            r.Status,
		InquiryType:       r.InquiryType,
		AgentID:           r.AgentID,
		ListingID:         r.ListingID,
		NeedsAssignment:   r.NeedsAssignment,
		FollowupDueBefore: r.FollowupDueBefore,
		Page:              r.Page,
		PageSize:          r.PageSize,
	}
}

func parseListInquiriesRequest(c *gin.Context) (*ListInquiriesRequest, error) {
	p := utils.ParsePagination(c)
	req := &ListInquiriesRequest{
		Page:        p.Page,
		PageSize:    p.PageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		InquiryType: strings.TrimSpace(c.Query("inquiry_type")),
		AgentID:     strings.TrimSpace(c.Query("agent_id")),
		ListingID:   strings.TrimSpace(c.Query("listing_id")),
	}

	if raw := c.Query("needs_assignment"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.NewValidationError("invalid needs_assignment", "must be true or false")
		}
		req.NeedsAssignment = &v
	}

	if raw := c.Query("followup_due_before"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.NewValidationError("invalid followup_due_before", "must be an RFC 3339 timestamp")
		}
		req.FollowupDueBefore = &at
	}

	return req, nil
}

func parseInquiryID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if err := utils.ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}

func bindError(err error) error {
	return errors.NewValidationError("invalid request body", err.Error())
}

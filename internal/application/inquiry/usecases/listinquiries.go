package usecases

import (
	"context"
	"time"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type ListInquiriesQuery struct {
	Actor           authorization.Actor
	Status          string
	InquiryType     string
	AgentID         string
	ListingID       string
	NeedsAssignment *bool
	Page            int
	PageSize        int

	// FollowupDueBefore keeps inquiries whose next follow-up is at or
	// before this instant.
	FollowupDueBefore *time.Time
}

type ListInquiriesResult struct {
	Inquiries []*dto.InquiryDTO `json:"inquiries"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

type ListInquiriesUseCase struct {
	repo      inquiry.Repository
	directory property.Directory
	authz     authorization.Authorizer
	logger    logger.Interface
}

func NewListInquiriesUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	authz authorization.Authorizer,
	logger logger.Interface,
) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		repo:      repo,
		directory: directory,
		authz:     authz,
		logger:    logger,
	}
}

// Execute lists newest first. Agents only ever see what they currently hold,
// whatever agent_id they pass.
func (uc *ListInquiriesUseCase) Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error) {
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceInquiry, authorization.ActionList); err != nil {
		return nil, err
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := inquiry.Filter{
		NeedsAssignment:   query.NeedsAssignment,
		FollowupDueBefore: query.FollowupDueBefore,
		Page:              pagination.Page,
		PageSize:          pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.ParseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", err.Error())
		}
		filter.Status = &status
	}
	if query.InquiryType != "" {
		t, err := vo.ParseInquiryType(query.InquiryType)
		if err != nil {
			return nil, errors.NewValidationError("invalid inquiry type filter", err.Error())
		}
		filter.InquiryType = &t
	}

	switch {
	case query.Actor.IsAdmin():
		filter.Scope.AgentID = query.AgentID
	default:
		filter.Scope.AgentID = query.Actor.ID
	}
	if query.ListingID != "" {
		filter.Scope.ByListings = true
		filter.Scope.ListingIDs = []string{query.ListingID}
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries", "error", err)
		return nil, errors.FromStorage(err, "failed to list inquiries")
	}

	items := dto.ToInquiryDTOList(list)
	uc.attachListingTitles(ctx, items)

	return &ListInquiriesResult{
		Inquiries: items,
		Total:     total,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}, nil
}

func (uc *ListInquiriesUseCase) attachListingTitles(ctx context.Context, items []*dto.InquiryDTO) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.ListingID != "" {
			ids = append(ids, item.ListingID)
		}
	}
	if len(ids) == 0 || uc.directory == nil {
		return
	}

	listings, err := uc.directory.GetListings(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to look up listing titles", "error", err)
		return
	}
	for _, item := range items {
		if l, ok := listings[item.ListingID]; ok {
			item.ListingTitle = l.Title
		}
	}
}

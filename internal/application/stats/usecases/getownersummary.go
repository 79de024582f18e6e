package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type OwnerSummaryQuery struct {
	Actor   authorization.Actor
	OwnerID string
}

type GetOwnerSummaryUseCase struct {
	repo      inquiry.Repository
	directory property.Directory
	authz     authorization.Authorizer
	logger    logger.Interface
}

func NewGetOwnerSummaryUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	authz authorization.Authorizer,
	logger logger.Interface,
) *GetOwnerSummaryUseCase {
	return &GetOwnerSummaryUseCase{repo: repo, directory: directory, authz: authz, logger: logger}
}

func (uc *GetOwnerSummaryUseCase) Execute(ctx context.Context, query OwnerSummaryQuery) (*dto.OwnerSummaryDTO, error) {
	if query.OwnerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceOwner, authorization.ActionSummary); err != nil {
		return nil, err
	}
	if !query.Actor.IsAdmin() && query.Actor.ID != query.OwnerID {
		return nil, errors.NewForbiddenError("owners may only view their own summary")
	}

	listings, err := uc.directory.ListingsOfOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to load owner listings", "owner_id", query.OwnerID, "error", err)
		return nil, errors.FromStorage(err, "failed to load owner listings")
	}
	ids := listingIDs(listings)
	scope := inquiry.ListingScope(ids)

	byStatus, err := uc.repo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, errors.FromStorage(err, "failed to count inquiries")
	}
	byType, err := uc.repo.CountByType(ctx, scope)
	if err != nil {
		return nil, errors.FromStorage(err, "failed to count inquiries")
	}

	byListing := make([]dto.ListingSummaryDTO, 0, len(listings))
	for _, l := range listings {
		n, err := uc.repo.Count(ctx, inquiry.Filter{Scope: inquiry.ListingScope([]string{l.ID})})
		if err != nil {
			return nil, errors.FromStorage(err, "failed to count inquiries")
		}
		byListing = append(byListing, dto.ListingSummaryDTO{ListingID: l.ID, Title: l.Title, TotalInquiries: n})
	}

	statusCounts := dto.NewStatusCounts(byStatus)
	return &dto.OwnerSummaryDTO{
		OwnerID:        query.OwnerID,
		ListingIDs:     ids,
		TotalInquiries: statusCounts.Total,
		StatusCounts:   statusCounts,
		TypeCounts:     dto.NewTypeCounts(byType),
		ByListing:      byListing,
	}, nil
}

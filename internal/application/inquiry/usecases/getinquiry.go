package usecases

import (
	"context"
	stderrors "errors"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type GetInquiryQuery struct {
	Actor     authorization.Actor
	InquiryID string
}

type GetInquiryUseCase struct {
	repo      inquiry.Repository
	directory property.Directory
	authz     authorization.Authorizer
	renderer  NoteRenderer
	logger    logger.Interface
}

func NewGetInquiryUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	authz authorization.Authorizer,
	renderer NoteRenderer,
	logger logger.Interface,
) *GetInquiryUseCase {
	return &GetInquiryUseCase{
		repo:      repo,
		directory: directory,
		authz:     authz,
		renderer:  renderer,
		logger:    logger,
	}
}

// Execute returns the inquiry with its conversation log.
func (uc *GetInquiryUseCase) Execute(ctx context.Context, query GetInquiryQuery) (*dto.InquiryDTO, error) {
	if query.InquiryID == "" {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceInquiry, authorization.ActionRead); err != nil {
		return nil, err
	}

	inq, err := uc.repo.GetByID(ctx, query.InquiryID)
	if err != nil {
		return nil, toAppError(err, "failed to load inquiry")
	}
	if err := ensureHolder(query.Actor, inq); err != nil {
		uc.logger.Warnw("inquiry read denied",
			"inquiry_id", query.InquiryID,
			"actor_id", query.Actor.ID)
		return nil, err
	}

	logs, err := uc.repo.ListLogs(ctx, inq.ID())
	if err != nil {
		uc.logger.Errorw("failed to load conversation log", "inquiry_id", inq.ID(), "error", err)
		return nil, errors.FromStorage(err, "failed to load conversation log")
	}

	result := dto.ToInquiryDTO(inq)
	result.ConversationLogs = dto.ToLogEntryDTOs(logs, uc.renderer)
	result.ListingTitle = listingTitle(ctx, uc.directory, inq.ListingID(), uc.logger)
	return result, nil
}

// listingTitle is best effort; an unknown or unreachable listing yields "".
func listingTitle(ctx context.Context, directory property.Directory, listingID string, log logger.Interface) string {
	if listingID == "" || directory == nil {
		return ""
	}
	l, err := directory.GetListing(ctx, listingID)
	if err != nil {
		if !stderrors.Is(err, property.ErrListingNotFound) {
			log.Warnw("failed to look up listing", "listing_id", listingID, "error", err)
		}
		return ""
	}
	return l.Title
}

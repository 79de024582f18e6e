package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type GetHistoryQuery struct {
	Actor     authorization.Actor
	InquiryID string
}

type GetHistoryUseCase struct {
	repo     inquiry.Repository
	authz    authorization.Authorizer
	renderer NoteRenderer
	logger   logger.Interface
}

func NewGetHistoryUseCase(
	repo inquiry.Repository,
	authz authorization.Authorizer,
	renderer NoteRenderer,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		repo:     repo,
		authz:    authz,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute returns a new slice on every call, oldest entry first.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) ([]dto.LogEntryDTO, error) {
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
		return nil, err
	}

	entries, err := uc.repo.ListLogs(ctx, inq.ID())
	if err != nil {
		uc.logger.Errorw("failed to load conversation log", "inquiry_id", inq.ID(), "error", err)
		return nil, errors.FromStorage(err, "failed to load conversation log")
	}
	return dto.ToLogEntryDTOs(entries, uc.renderer), nil
}

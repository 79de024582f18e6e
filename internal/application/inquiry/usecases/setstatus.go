package usecases

import (
	"context"
	"time"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type SetStatusCommand struct {
	Actor          authorization.Actor
	InquiryID      string
	Status         string
	Message        string
	NextFollowupAt *time.Time
}

// SetStatusUseCase is the admin override: any stage except new, forwards or
// backwards.
type SetStatusUseCase struct {
	authz  authorization.Authorizer
	writer *inquiryWriter
	logger logger.Interface
}

func NewSetStatusUseCase(
	inquiryRepo inquiry.Repository,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *SetStatusUseCase {
	return &SetStatusUseCase{
		authz:  authz,
		writer: newInquiryWriter(inquiryRepo, txMgr, dispatcher, logger),
		logger: logger,
	}
}

func (uc *SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (*dto.InquiryDTO, error) {
	uc.logger.Infow("executing set status use case",
		"inquiry_id", cmd.InquiryID,
		"status", cmd.Status,
		"actor_id", cmd.Actor.ID)

	if cmd.InquiryID == "" {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceInquiry, authorization.ActionSetStatus); err != nil {
		return nil, err
	}

	target, err := vo.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewInvalidTransitionError("unknown status", cmd.Status)
	}

	inq, _, err := uc.writer.apply(ctx, cmd.InquiryID, nil, func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error) {
		return inq.SetStatus(target, authorOf(cmd.Actor), cmd.Message, followupOption(cmd.NextFollowupAt)...)
	})
	if err != nil {
		uc.logger.Warnw("failed to set inquiry status", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, toAppError(err, "failed to set inquiry status")
	}

	uc.logger.Infow("inquiry status set successfully",
		"inquiry_id", inq.ID(),
		"status", target.String())

	return dto.ToInquiryDTO(uc.writer.reload(ctx, inq)), nil
}

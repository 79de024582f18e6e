package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type UnassignInquiryCommand struct {
	Actor     authorization.Actor
	InquiryID string
}

type UnassignInquiryUseCase struct {
	authz  authorization.Authorizer
	writer *inquiryWriter
	logger logger.Interface
}

func NewUnassignInquiryUseCase(
	inquiryRepo inquiry.Repository,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *UnassignInquiryUseCase {
	return &UnassignInquiryUseCase{
		authz:  authz,
		writer: newInquiryWriter(inquiryRepo, txMgr, dispatcher, logger),
		logger: logger,
	}
}

func (uc *UnassignInquiryUseCase) Execute(ctx context.Context, cmd UnassignInquiryCommand) (*dto.InquiryDTO, error) {
	uc.logger.Infow("executing unassign inquiry use case",
		"inquiry_id", cmd.InquiryID,
		"actor_id", cmd.Actor.ID)

	if cmd.InquiryID == "" {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceInquiry, authorization.ActionUnassign); err != nil {
		return nil, err
	}

	inq, _, err := uc.writer.apply(ctx, cmd.InquiryID, nil, func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error) {
		return inq.Unassign()
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, toAppError(err, "failed to unassign inquiry")
	}

	uc.logger.Infow("inquiry unassigned successfully", "inquiry_id", inq.ID())
	return dto.ToInquiryDTO(uc.writer.reload(ctx, inq)), nil
}

package usecases

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type AdvanceStatusCommand struct {
	Actor     authorization.Actor
	InquiryID string

	// Message replaces the default "Status updated to ..." log text.
	Message string
	// NextFollowupAt reschedules the next customer contact; nil keeps it.
	NextFollowupAt *time.Time
}

type AdvanceStatusUseCase struct {
	authz  authorization.Authorizer
	writer *inquiryWriter
	logger logger.Interface
}

func NewAdvanceStatusUseCase(
	inquiryRepo inquiry.Repository,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AdvanceStatusUseCase {
	return &AdvanceStatusUseCase{
		authz:  authz,
		writer: newInquiryWriter(inquiryRepo, txMgr, dispatcher, logger),
		logger: logger,
	}
}

func (uc *AdvanceStatusUseCase) Execute(ctx context.Context, cmd AdvanceStatusCommand) (*dto.InquiryDTO, error) {
	uc.logger.Infow("executing advance status use case",
		"inquiry_id", cmd.InquiryID,
		"actor_id", cmd.Actor.ID)

	if cmd.InquiryID == "" {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if utf8.RuneCountInString(cmd.Message) > inquiry.MaxNoteLength {
		return nil, errors.NewValidationError("message is too long")
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceInquiry, authorization.ActionAdvance); err != nil {
		return nil, err
	}

	guard := func(_ context.Context, inq *inquiry.Inquiry) error {
		return ensureHolder(cmd.Actor, inq)
	}
	inq, entry, err := uc.writer.apply(ctx, cmd.InquiryID, guard, func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error) {
		return inq.Advance(authorOf(cmd.Actor), cmd.Message, followupOption(cmd.NextFollowupAt)...)
	})
	if err != nil {
		uc.logger.Warnw("failed to advance inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, toAppError(err, "failed to advance inquiry")
	}

	uc.logger.Infow("inquiry advanced successfully",
		"inquiry_id", inq.ID(),
		"status", entry.ResultingStatus().String())

	return dto.ToInquiryDTO(uc.writer.reload(ctx, inq)), nil
}

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

type AddNoteCommand struct {
	Actor     authorization.Actor
	InquiryID string
	Text      string
}

type AddNoteUseCase struct {
	authz    authorization.Authorizer
	writer   *inquiryWriter
	renderer NoteRenderer
	logger   logger.Interface
}

func NewAddNoteUseCase(
	inquiryRepo inquiry.Repository,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	dispatcher events.EventDispatcher,
	renderer NoteRenderer,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		authz:    authz,
		writer:   newInquiryWriter(inquiryRepo, txMgr, dispatcher, logger),
		renderer: renderer,
		logger:   logger,
	}
}

// Execute appends a note under the inquiry's row lock so notes written at
// the same time still get distinct, ordered entries.
func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.LogEntryDTO, error) {
	uc.logger.Infow("executing add note use case",
		"inquiry_id", cmd.InquiryID,
		"actor_id", cmd.Actor.ID)

	if cmd.InquiryID == "" {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceInquiry, authorization.ActionNote); err != nil {
		return nil, err
	}

	guard := func(_ context.Context, inq *inquiry.Inquiry) error {
		return ensureHolder(cmd.Actor, inq)
	}
	_, entry, err := uc.writer.apply(ctx, cmd.InquiryID, guard, func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error) {
		return inq.AddNote(authorOf(cmd.Actor), cmd.Text)
	})
	if err != nil {
		uc.logger.Warnw("failed to add note", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, toAppError(err, "failed to add note")
	}

	uc.logger.Infow("note added successfully",
		"inquiry_id", cmd.InquiryID,
		"entry_id", entry.ID())

	result := dto.ToLogEntryDTO(entry, uc.renderer)
	return &result, nil
}

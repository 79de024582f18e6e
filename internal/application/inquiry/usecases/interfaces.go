package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
)

type CreateInquiryExecutor interface {
	Execute(ctx context.Context, cmd CreateInquiryCommand) (*dto.InquiryDTO, error)
}

type GetInquiryExecutor interface {
	Execute(ctx context.Context, query GetInquiryQuery) (*dto.InquiryDTO, error)
}

type ListInquiriesExecutor interface {
	Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error)
}

type AssignInquiryExecutor interface {
	Execute(ctx context.Context, cmd AssignInquiryCommand) (*dto.InquiryDTO, error)
}

type UnassignInquiryExecutor interface {
	Execute(ctx context.Context, cmd UnassignInquiryCommand) (*dto.InquiryDTO, error)
}

type AdvanceStatusExecutor interface {
	Execute(ctx context.Context, cmd AdvanceStatusCommand) (*dto.InquiryDTO, error)
}

type SetStatusExecutor interface {
	Execute(ctx context.Context, cmd SetStatusCommand) (*dto.InquiryDTO, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*dto.LogEntryDTO, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) ([]dto.LogEntryDTO, error)
}

// TextSanitizer strips markup from public form input.
type TextSanitizer interface {
	PlainText(text string) string
}

// NoteRenderer is satisfied by the markdown service.
type NoteRenderer interface {
	dto.HTMLRenderer
}

package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// CreateInquiryCommand is a public form submission; no actor is required.
type CreateInquiryCommand struct {
	Name             string                 `validate:"required,max=100"`
	Phone            string                 `validate:"required,phone"`
	Email            string                 `validate:"omitempty,email,max=255"`
	Message          string                 `validate:"max=5000"`
	InquiryType      string                 `validate:"omitempty,max=50"`
	SourcePage       string                 `validate:"max=255"`
	ListingID        string                 `validate:"max=64"`
	WhatsappOptIn    bool
	PreferredVisitAt *time.Time
	Metadata         map[string]interface{}
}

type CreateInquiryUseCase struct {
	repo       inquiry.Repository
	directory  property.Directory
	sanitizer  TextSanitizer
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewCreateInquiryUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	sanitizer TextSanitizer,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		repo:       repo,
		directory:  directory,
		sanitizer:  sanitizer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, cmd CreateInquiryCommand) (*dto.InquiryDTO, error) {
	uc.logger.Infow("executing create inquiry use case",
		"inquiry_type", cmd.InquiryType,
		"listing_id", cmd.ListingID,
		"source_page", cmd.SourcePage)

	cmd.Name = uc.sanitizer.PlainText(cmd.Name)
	cmd.Message = uc.sanitizer.PlainText(cmd.Message)
	cmd.SourcePage = uc.sanitizer.PlainText(cmd.SourcePage)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create inquiry command", "error", err)
		return nil, err
	}

	inquiryType, err := vo.ParseInquiryType(cmd.InquiryType)
	if err != nil {
		return nil, errors.NewValidationError("invalid inquiry type", err.Error())
	}

	var listingTitle string
	if cmd.ListingID != "" {
		listing, err := uc.directory.GetListing(ctx, cmd.ListingID)
		if err != nil {
			if stderrors.Is(err, property.ErrListingNotFound) {
				return nil, errors.NewValidationError("listing not found", cmd.ListingID)
			}
			uc.logger.Errorw("failed to look up listing", "listing_id", cmd.ListingID, "error", err)
			return nil, errors.FromStorage(err, "failed to look up listing")
		}
		listingTitle = listing.Title
	}

	inq, err := inquiry.NewInquiry(inquiry.NewInquiryParams{
		Name:             cmd.Name,
		Phone:            cmd.Phone,
		Email:            cmd.Email,
		Message:          cmd.Message,
		InquiryType:      inquiryType,
		SourcePage:       cmd.SourcePage,
		ListingID:        cmd.ListingID,
		WhatsappOptIn:    cmd.WhatsappOptIn,
		PreferredVisitAt: cmd.PreferredVisitAt,
		Metadata:         cmd.Metadata,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, inq); err != nil {
		uc.logger.Errorw("failed to save inquiry", "error", err)
		return nil, errors.FromStorage(err, "failed to save inquiry")
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.PublishAll(inq.PullEvents()); err != nil {
			uc.logger.Warnw("failed to dispatch inquiry events", "inquiry_id", inq.ID(), "error", err)
		}
	}

	uc.logger.Infow("inquiry created successfully",
		"inquiry_id", inq.ID(),
		"inquiry_type", inq.InquiryType().String())

	result := dto.ToInquiryDTO(inq)
	result.ListingTitle = listingTitle
	return result, nil
}

func (uc *CreateInquiryUseCase) validateCommand(cmd CreateInquiryCommand) error {
	return utils.ValidateStruct(cmd)
}

package usecases

import (
	stderrors "errors"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

func toAppError(err error, fallback string) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, agent.ErrAgentNotFound):
		return errors.NewNotFoundError("agent not found")
	case stderrors.Is(err, agent.ErrDuplicateEmail):
		return errors.NewConflictError("an agent with this email already exists")
	case stderrors.Is(err, agent.ErrHasOpenInquiries):
		return errors.NewAgentHasOpenInquiriesError("agent still has open inquiries, reassign them first")
	default:
		return errors.FromStorage(err, fallback)
	}
}

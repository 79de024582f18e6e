package usecases

import (
	stderrors "errors"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// toAppError maps domain sentinels onto the error kinds callers branch on.
// Anything unrecognised is treated as a storage failure.
func toAppError(err error, fallback string) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, inquiry.ErrInquiryNotFound):
		return errors.NewNotFoundError("inquiry not found")
	case stderrors.Is(err, inquiry.ErrTerminalState):
		return errors.NewTerminalStateError("inquiry is closed")
	case stderrors.Is(err, inquiry.ErrUnknownState):
		return errors.NewInvalidTransitionError("inquiry has an unknown status", err.Error())
	case stderrors.Is(err, inquiry.ErrInvalidTransition):
		return errors.NewInvalidTransitionError(err.Error())
	case stderrors.Is(err, inquiry.ErrNotAssigned):
		return errors.NewValidationError("inquiry is not assigned")
	case stderrors.Is(err, inquiry.ErrEmptyNote), stderrors.Is(err, inquiry.ErrNoteTooLong),
		stderrors.Is(err, inquiry.ErrInvalidFollowup):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, inquiry.ErrConcurrentModification):
		return errors.NewConflictError("inquiry was modified by another request, please retry")
	case stderrors.Is(err, agent.ErrAgentNotFound):
		return errors.NewNotFoundError("agent not found")
	case stderrors.Is(err, agent.ErrAgentInactive):
		return errors.NewAgentInactiveError("agent is inactive")
	default:
		return errors.FromStorage(err, fallback)
	}
}

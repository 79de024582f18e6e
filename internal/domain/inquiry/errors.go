package inquiry

import (
	"errors"

	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrTerminalState   = vo.ErrTerminalStatus
	ErrUnknownState    = vo.ErrUnknownStatus
	// ErrInvalidTransition covers moves the pipeline forbids, such as
	// entering new or advancing an inquiry nobody has been assigned to.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAssigned       = errors.New("inquiry is not assigned")
	ErrEmptyNote         = errors.New("note text is required")
	ErrNoteTooLong       = errors.New("note text is too long")
	ErrInvalidFollowup   = errors.New("invalid follow-up time")
	// ErrConcurrentModification is returned by Repository.Update when the
	// stored version moved since the aggregate was loaded.
	ErrConcurrentModification = errors.New("inquiry was modified concurrently")
)

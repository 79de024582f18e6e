package agent

import "errors"

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrAgentInactive    = errors.New("agent is inactive")
	ErrDuplicateEmail   = errors.New("agent email already exists")
	ErrHasOpenInquiries = errors.New("agent still has open inquiries")
)

package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/notification/dto"
)

type NotifyAssignmentExecutor interface {
	Execute(ctx context.Context, cmd NotifyAssignmentCommand) error
}

// AssignmentMailer delivers assignment emails.
type AssignmentMailer interface {
	SendAssignmentEmail(msg dto.AssignmentEmail) error
}

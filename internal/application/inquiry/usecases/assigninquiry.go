package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type AssignInquiryCommand struct {
	Actor     authorization.Actor
	InquiryID string
	AgentID   string
}

type AssignInquiryUseCase struct {
	agentRepo agent.Repository
	authz     authorization.Authorizer
	writer    *inquiryWriter
	logger    logger.Interface
}

func NewAssignInquiryUseCase(
	inquiryRepo inquiry.Repository,
	agentRepo agent.Repository,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignInquiryUseCase {
	return &AssignInquiryUseCase{
		agentRepo: agentRepo,
		authz:     authz,
		writer:    newInquiryWriter(inquiryRepo, txMgr, dispatcher, logger),
		logger:    logger,
	}
}

// Execute assigns or reassigns. Assigning to the current holder returns the
// inquiry unchanged.
func (uc *AssignInquiryUseCase) Execute(ctx context.Context, cmd AssignInquiryCommand) (*dto.InquiryDTO, error) {
	uc.logger.Infow("executing assign inquiry use case",
		"inquiry_id", cmd.InquiryID,
		"agent_id", cmd.AgentID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid assign inquiry command", "error", err)
		return nil, err
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceInquiry, authorization.ActionAssign); err != nil {
		return nil, err
	}

	// The agent row stays locked until the assignment commits, so a delete
	// or deactivation either lands before the check or waits for it.
	var assignee *agent.Agent
	ensureAssignee := func(txCtx context.Context, _ *inquiry.Inquiry) error {
		a, err := uc.agentRepo.GetByIDForUpdate(txCtx, cmd.AgentID)
		if err != nil {
			return err
		}
		if err := a.EnsureAssignable(); err != nil {
			uc.logger.Warnw("assignee is not assignable",
				"agent_id", cmd.AgentID,
				"status", a.Status().String())
			return err
		}
		assignee = a
		return nil
	}

	inq, entry, err := uc.writer.apply(ctx, cmd.InquiryID, ensureAssignee, func(inq *inquiry.Inquiry) (*inquiry.LogEntry, error) {
		return inq.AssignTo(assignee.ID(), assignee.Name())
	})
	if err != nil {
		uc.logger.Errorw("failed to assign inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, toAppError(err, "failed to assign inquiry")
	}

	if entry == nil {
		uc.logger.Infow("inquiry already assigned to agent",
			"inquiry_id", cmd.InquiryID,
			"agent_id", cmd.AgentID)
		return dto.ToInquiryDTO(inq), nil
	}

	uc.logger.Infow("inquiry assigned successfully",
		"inquiry_id", inq.ID(),
		"agent_id", assignee.ID(),
		"status", inq.Status().String())

	return dto.ToInquiryDTO(uc.writer.reload(ctx, inq)), nil
}

func (uc *AssignInquiryUseCase) validateCommand(cmd AssignInquiryCommand) error {
	if cmd.InquiryID == "" {
		return errors.NewValidationError("inquiry ID is required")
	}
	if cmd.AgentID == "" {
		return errors.NewValidationError("agent ID is required")
	}
	return nil
}

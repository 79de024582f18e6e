package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type DeleteAgentCommand struct {
	Actor   authorization.Actor
	AgentID string
}

// DeleteAgentUseCase refuses to delete an agent who still holds a
// non-closed inquiry. Log entries keep the agent's name as plain text, so
// history survives the deletion.
type DeleteAgentUseCase struct {
	repo   agent.Repository
	open   OpenInquiryCounter
	txMgr  *db.TransactionManager
	authz  authorization.Authorizer
	logger logger.Interface
}

func NewDeleteAgentUseCase(
	repo agent.Repository,
	open OpenInquiryCounter,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	logger logger.Interface,
) *DeleteAgentUseCase {
	return &DeleteAgentUseCase{repo: repo, open: open, txMgr: txMgr, authz: authz, logger: logger}
}

func (uc *DeleteAgentUseCase) Execute(ctx context.Context, cmd DeleteAgentCommand) error {
	uc.logger.Infow("executing delete agent use case", "agent_id", cmd.AgentID, "actor_id", cmd.Actor.ID)

	if cmd.AgentID == "" {
		return errors.NewValidationError("agent ID is required")
	}
	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceAgent, authorization.ActionDelete); err != nil {
		return err
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Assignments lock the same row, so none can land between the count
		// and the delete.
		if _, err := uc.repo.GetByIDForUpdate(txCtx, cmd.AgentID); err != nil {
			return err
		}

		open, err := uc.open.CountOpenByAgent(txCtx, cmd.AgentID)
		if err != nil {
			return err
		}
		if open > 0 {
			uc.logger.Warnw("agent still holds open inquiries", "agent_id", cmd.AgentID, "open", open)
			return errors.NewAgentHasOpenInquiriesError(
				"agent still has open inquiries, reassign them first",
				agent.ErrHasOpenInquiries.Error(),
			)
		}

		return uc.repo.Delete(txCtx, cmd.AgentID)
	})
	if err != nil {
		return toAppError(err, "failed to delete agent")
	}

	uc.logger.Infow("agent deleted successfully", "agent_id", cmd.AgentID)
	return nil
}

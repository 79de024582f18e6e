package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/agent/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// UpdateAgentCommand replaces the profile. A nil Status keeps the current one.
type UpdateAgentCommand struct {
	Actor       authorization.Actor
	AgentID     string  `validate:"required"`
	Name        string  `validate:"required,max=100"`
	Email       string  `validate:"required,email,max=255"`
	Phone       string  `validate:"omitempty,phone"`
	Designation string  `validate:"max=100"`
	Status      *string `validate:"omitempty,oneof=active inactive"`
	Notes       string  `validate:"max=2000"`
}

type UpdateAgentUseCase struct {
	repo    agent.Repository
	handled HandledCounter
	txMgr   *db.TransactionManager
	authz   authorization.Authorizer
	logger  logger.Interface
}

func NewUpdateAgentUseCase(
	repo agent.Repository,
	handled HandledCounter,
	txMgr *db.TransactionManager,
	authz authorization.Authorizer,
	logger logger.Interface,
) *UpdateAgentUseCase {
	return &UpdateAgentUseCase{repo: repo, handled: handled, txMgr: txMgr, authz: authz, logger: logger}
}

// Execute holds the agent row lock while the profile changes, so a
// deactivation cannot slip in between an assignment's check and its commit.
func (uc *UpdateAgentUseCase) Execute(ctx context.Context, cmd UpdateAgentCommand) (*dto.AgentDTO, error) {
	uc.logger.Infow("executing update agent use case", "agent_id", cmd.AgentID, "actor_id", cmd.Actor.ID)

	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceAgent, authorization.ActionUpdate); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	var a *agent.Agent
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := uc.repo.GetByIDForUpdate(txCtx, cmd.AgentID)
		if err != nil {
			return err
		}

		if err := loaded.UpdateProfile(agent.Profile{
			Name:        cmd.Name,
			Email:       cmd.Email,
			Phone:       cmd.Phone,
			Designation: cmd.Designation,
			Notes:       cmd.Notes,
		}); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if cmd.Status != nil {
			status, err := agent.ParseStatus(*cmd.Status)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := loaded.ChangeStatus(status); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if err := uc.repo.Update(txCtx, loaded); err != nil {
			uc.logger.Errorw("failed to update agent", "agent_id", cmd.AgentID, "error", err)
			return err
		}
		a = loaded
		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to update agent")
	}

	handled, err := uc.handled.CountHandledByAgent(ctx, a.ID())
	if err != nil {
		return nil, toAppError(err, "failed to count agent inquiries")
	}

	uc.logger.Infow("agent updated successfully", "agent_id", a.ID(), "status", a.Status().String())
	return dto.ToAgentDTO(a, handled), nil
}

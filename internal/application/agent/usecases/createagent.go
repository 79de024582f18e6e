package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/agent/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type CreateAgentCommand struct {
	Actor       authorization.Actor
	Name        string `validate:"required,max=100"`
	Email       string `validate:"required,email,max=255"`
	Phone       string `validate:"omitempty,phone"`
	Designation string `validate:"max=100"`
	Status      string `validate:"omitempty,oneof=active inactive"`
	Notes       string `validate:"max=2000"`
}

type CreateAgentUseCase struct {
	repo   agent.Repository
	authz  authorization.Authorizer
	logger logger.Interface
}

func NewCreateAgentUseCase(repo agent.Repository, authz authorization.Authorizer, logger logger.Interface) *CreateAgentUseCase {
	return &CreateAgentUseCase{repo: repo, authz: authz, logger: logger}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, cmd CreateAgentCommand) (*dto.AgentDTO, error) {
	uc.logger.Infow("executing create agent use case", "email", cmd.Email, "actor_id", cmd.Actor.ID)

	if err := authorization.Require(uc.authz, cmd.Actor, authorization.ResourceAgent, authorization.ActionCreate); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	status, err := agent.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	a, err := agent.NewAgent(agent.Profile{
		Name:        cmd.Name,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
		Designation: cmd.Designation,
		Notes:       cmd.Notes,
	}, status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create agent", "email", cmd.Email, "error", err)
		return nil, toAppError(err, "failed to create agent")
	}

	uc.logger.Infow("agent created successfully", "agent_id", a.ID())
	return dto.ToAgentDTO(a, 0), nil
}

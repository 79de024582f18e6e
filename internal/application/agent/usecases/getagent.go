package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/agent/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type GetAgentQuery struct {
	Actor   authorization.Actor
	AgentID string
}

type GetAgentUseCase struct {
	repo    agent.Repository
	handled HandledCounter
	authz   authorization.Authorizer
	logger  logger.Interface
}

func NewGetAgentUseCase(
	repo agent.Repository,
	handled HandledCounter,
	authz authorization.Authorizer,
	logger logger.Interface,
) *GetAgentUseCase {
	return &GetAgentUseCase{repo: repo, handled: handled, authz: authz, logger: logger}
}

func (uc *GetAgentUseCase) Execute(ctx context.Context, query GetAgentQuery) (*dto.AgentDTO, error) {
	if query.AgentID == "" {
		return nil, errors.NewValidationError("agent ID is required")
	}
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceAgent, authorization.ActionRead); err != nil {
		return nil, err
	}

	a, err := uc.repo.GetByID(ctx, query.AgentID)
	if err != nil {
		return nil, toAppError(err, "failed to load agent")
	}

	handled, err := uc.handled.CountHandledByAgent(ctx, a.ID())
	if err != nil {
		uc.logger.Errorw("failed to count agent inquiries", "agent_id", a.ID(), "error", err)
		return nil, toAppError(err, "failed to count agent inquiries")
	}
	return dto.ToAgentDTO(a, handled), nil
}

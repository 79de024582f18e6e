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

type ListAgentsQuery struct {
	Actor    authorization.Actor
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListAgentsResult struct {
	Agents   []*dto.AgentDTO `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListAgentsUseCase struct {
	repo    agent.Repository
	handled HandledCounter
	authz   authorization.Authorizer
	logger  logger.Interface
}

func NewListAgentsUseCase(
	repo agent.Repository,
	handled HandledCounter,
	authz authorization.Authorizer,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{repo: repo, handled: handled, authz: authz, logger: logger}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error) {
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceAgent, authorization.ActionList); err != nil {
		return nil, err
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := agent.Filter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if query.Status != "" {
		status, err := agent.ParseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, toAppError(err, "failed to list agents")
	}

	agents := make([]*dto.AgentDTO, 0, len(list))
	for _, a := range list {
		handled, err := uc.handled.CountHandledByAgent(ctx, a.ID())
		if err != nil {
			return nil, toAppError(err, "failed to count agent inquiries")
		}
		agents = append(agents, dto.ToAgentDTO(a, handled))
	}

	return &ListAgentsResult{
		Agents:   agents,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

package usecases

import (
	"context"
	stderrors "errors"

	agentdto "github.com/instamakaan/instamakaan/internal/application/agent/dto"
	inquirydto "github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	vo "github.com/instamakaan/instamakaan/internal/domain/inquiry/valueobjects"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/constants"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type AgentSummaryQuery struct {
	Actor   authorization.Actor
	AgentID string
}

// GetAgentSummaryUseCase reports every inquiry the agent holds or held
// before, each with its conversation log.
type GetAgentSummaryUseCase struct {
	inquiryRepo inquiry.Repository
	agentRepo   agent.Repository
	authz       authorization.Authorizer
	renderer    inquirydto.HTMLRenderer
	logger      logger.Interface
}

func NewGetAgentSummaryUseCase(
	inquiryRepo inquiry.Repository,
	agentRepo agent.Repository,
	authz authorization.Authorizer,
	renderer inquirydto.HTMLRenderer,
	logger logger.Interface,
) *GetAgentSummaryUseCase {
	return &GetAgentSummaryUseCase{
		inquiryRepo: inquiryRepo,
		agentRepo:   agentRepo,
		authz:       authz,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetAgentSummaryUseCase) Execute(ctx context.Context, query AgentSummaryQuery) (*dto.AgentSummaryDTO, error) {
	if query.AgentID == "" {
		return nil, errors.NewValidationError("agent ID is required")
	}
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceAgent, authorization.ActionSummary); err != nil {
		return nil, err
	}
	if !query.Actor.IsAdmin() && query.Actor.ID != query.AgentID {
		return nil, errors.NewForbiddenError("agents may only view their own summary")
	}

	a, err := uc.agentRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		if stderrors.Is(err, agent.ErrAgentNotFound) {
			return nil, errors.NewNotFoundError("agent not found")
		}
		return nil, errors.FromStorage(err, "failed to load agent")
	}

	handled, err := uc.handledInquiries(ctx, a.ID())
	if err != nil {
		uc.logger.Errorw("failed to load agent inquiries", "agent_id", a.ID(), "error", err)
		return nil, errors.FromStorage(err, "failed to load agent inquiries")
	}

	ids := make([]string, 0, len(handled))
	raw := make(map[vo.Status]int64)
	for _, inq := range handled {
		ids = append(ids, inq.ID())
		raw[inq.Status()]++
	}

	logs, err := uc.inquiryRepo.ListLogsForInquiries(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load conversation logs", "agent_id", a.ID(), "error", err)
		return nil, errors.FromStorage(err, "failed to load conversation logs")
	}

	items := make([]*inquirydto.InquiryDTO, 0, len(handled))
	for _, inq := range handled {
		item := inquirydto.ToInquiryDTO(inq)
		item.ConversationLogs = inquirydto.ToLogEntryDTOs(logs[inq.ID()], uc.renderer)
		items = append(items, item)
	}

	return &dto.AgentSummaryDTO{
		Agent:          agentdto.ToAgentDTO(a, int64(len(handled))),
		TotalInquiries: int64(len(handled)),
		StatusCounts:   dto.NewStatusCounts(raw),
		Inquiries:      items,
	}, nil
}

func (uc *GetAgentSummaryUseCase) handledInquiries(ctx context.Context, agentID string) ([]*inquiry.Inquiry, error) {
	var all []*inquiry.Inquiry
	for page := 1; ; page++ {
		batch, total, err := uc.inquiryRepo.List(ctx, inquiry.Filter{
			HandledByAgentID: agentID,
			Page:             page,
			PageSize:         constants.MaxInquiryListLimit,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

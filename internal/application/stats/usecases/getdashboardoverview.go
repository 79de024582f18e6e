package usecases

import (
	"context"

	inquirydto "github.com/instamakaan/instamakaan/internal/application/inquiry/dto"
	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/constants"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

type DashboardOverviewQuery struct {
	Actor authorization.Actor
}

type GetDashboardOverviewUseCase struct {
	inquiryRepo inquiry.Repository
	agentRepo   agent.Repository
	authz       authorization.Authorizer
	logger      logger.Interface
}

func NewGetDashboardOverviewUseCase(
	inquiryRepo inquiry.Repository,
	agentRepo agent.Repository,
	authz authorization.Authorizer,
	logger logger.Interface,
) *GetDashboardOverviewUseCase {
	return &GetDashboardOverviewUseCase{
		inquiryRepo: inquiryRepo,
		agentRepo:   agentRepo,
		authz:       authz,
		logger:      logger,
	}
}

// Execute builds the admin landing page. "Today" starts at midnight in the
// business timezone.
func (uc *GetDashboardOverviewUseCase) Execute(ctx context.Context, query DashboardOverviewQuery) (*dto.DashboardOverviewDTO, error) {
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceDashboard, authorization.ActionRead); err != nil {
		return nil, err
	}

	byStatus, err := uc.inquiryRepo.CountByStatus(ctx, inquiry.GlobalScope())
	if err != nil {
		return nil, uc.storageError(err)
	}
	byType, err := uc.inquiryRepo.CountByType(ctx, inquiry.GlobalScope())
	if err != nil {
		return nil, uc.storageError(err)
	}

	startOfDay := biztime.StartOfDayUTC(biztime.NowUTC())
	today, err := uc.inquiryRepo.Count(ctx, inquiry.Filter{CreatedSince: &startOfDay})
	if err != nil {
		return nil, uc.storageError(err)
	}

	needs := true
	unassigned, err := uc.inquiryRepo.Count(ctx, inquiry.Filter{NeedsAssignment: &needs})
	if err != nil {
		return nil, uc.storageError(err)
	}

	totalAgents, err := uc.agentRepo.Count(ctx, nil)
	if err != nil {
		return nil, uc.storageError(err)
	}
	active := agent.StatusActive
	activeAgents, err := uc.agentRepo.Count(ctx, &active)
	if err != nil {
		return nil, uc.storageError(err)
	}

	recent, _, err := uc.inquiryRepo.List(ctx, inquiry.Filter{Page: 1, PageSize: constants.RecentInquiryLimit})
	if err != nil {
		return nil, uc.storageError(err)
	}

	statusCounts := dto.NewStatusCounts(byStatus)
	return &dto.DashboardOverviewDTO{
		TotalInquiries:  statusCounts.Total,
		InquiriesToday:  today,
		NeedsAssignment: unassigned,
		TotalAgents:     totalAgents,
		ActiveAgents:    activeAgents,
		StatusCounts:    statusCounts,
		TypeCounts:      dto.NewTypeCounts(byType),
		RecentInquiries: inquirydto.ToInquiryDTOList(recent),
	}, nil
}

func (uc *GetDashboardOverviewUseCase) storageError(err error) error {
	uc.logger.Errorw("failed to build dashboard overview", "error", err)
	return errors.FromStorage(err, "failed to build dashboard overview")
}

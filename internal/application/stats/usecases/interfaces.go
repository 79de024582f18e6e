package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
)

type GetStatusCountsExecutor interface {
	Execute(ctx context.Context, query CountsQuery) (*dto.StatusCounts, error)
}

type GetTypeCountsExecutor interface {
	Execute(ctx context.Context, query CountsQuery) (map[string]int64, error)
}

type GetAgentSummaryExecutor interface {
	Execute(ctx context.Context, query AgentSummaryQuery) (*dto.AgentSummaryDTO, error)
}

type GetOwnerSummaryExecutor interface {
	Execute(ctx context.Context, query OwnerSummaryQuery) (*dto.OwnerSummaryDTO, error)
}

type GetDashboardOverviewExecutor interface {
	Execute(ctx context.Context, query DashboardOverviewQuery) (*dto.DashboardOverviewDTO, error)
}

package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/stats/dto"
	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// GetStatusCountsUseCase runs a fresh GROUP BY on every call.
type GetStatusCountsUseCase struct {
	repo   inquiry.Repository
	scopes scopeResolver
	authz  authorization.Authorizer
	logger logger.Interface
}

func NewGetStatusCountsUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	authz authorization.Authorizer,
	logger logger.Interface,
) *GetStatusCountsUseCase {
	return &GetStatusCountsUseCase{
		repo:   repo,
		scopes: scopeResolver{directory: directory},
		authz:  authz,
		logger: logger,
	}
}

func (uc *GetStatusCountsUseCase) Execute(ctx context.Context, query CountsQuery) (*dto.StatusCounts, error) {
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceStats, authorization.ActionRead); err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	raw, err := uc.repo.CountByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count inquiries by status", "error", err)
		return nil, errors.FromStorage(err, "failed to count inquiries")
	}

	counts := dto.NewStatusCounts(raw)
	return &counts, nil
}

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

type GetTypeCountsUseCase struct {
	repo   inquiry.Repository
	scopes scopeResolver
	authz  authorization.Authorizer
	logger logger.Interface
}

func NewGetTypeCountsUseCase(
	repo inquiry.Repository,
	directory property.Directory,
	authz authorization.Authorizer,
	logger logger.Interface,
) *GetTypeCountsUseCase {
	return &GetTypeCountsUseCase{
		repo:   repo,
		scopes: scopeResolver{directory: directory},
		authz:  authz,
		logger: logger,
	}
}

func (uc *GetTypeCountsUseCase) Execute(ctx context.Context, query CountsQuery) (map[string]int64, error) {
	if err := authorization.Require(uc.authz, query.Actor, authorization.ResourceStats, authorization.ActionRead); err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	raw, err := uc.repo.CountByType(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count inquiries by type", "error", err)
		return nil, errors.FromStorage(err, "failed to count inquiries")
	}
	return dto.NewTypeCounts(raw), nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/mappers"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	apperrors "github.com/instamakaan/instamakaan/internal/shared/errors"
)

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

var _ agent.Repository = (*AgentRepository)(nil)

func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(a)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return agent.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id string) (*agent.Agent, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *AgentRepository) GetByIDForUpdate(ctx context.Context, id string) (*agent.Agent, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *AgentRepository) get(tx *gorm.DB, id string) (*agent.Agent, error) {
	var model models.AgentModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AgentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return agent.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return agent.ErrAgentNotFound
	}
	return nil
}

func (r *AgentRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.AgentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return agent.ErrAgentNotFound
	}
	return nil
}

func (r *AgentRepository) List(ctx context.Context, filter agent.Filter) ([]*agent.Agent, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count agents: %w", err)
	}

	query = query.Order("name ASC").Order("id ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var list []models.AgentModel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}

	agents := make([]*agent.Agent, 0, len(list))
	for idx := range list {
		a, err := r.mapper.ToDomain(&list[idx])
		if err != nil {
			return nil, 0, err
		}
		agents = append(agents, a)
	}
	return agents, total, nil
}

func (r *AgentRepository) Count(ctx context.Context, status *agent.Status) (int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{})
	if status != nil {
		query = query.Where("status = ?", status.String())
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}
	return total, nil
}

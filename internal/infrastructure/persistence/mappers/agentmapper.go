package mappers

import (
	"github.com/instamakaan/instamakaan/internal/domain/agent"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	ToDomain(model *models.AgentModel) (*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:          a.ID(),
		Name:        a.Name(),
		Email:       a.Email(),
		Phone:       a.Phone(),
		Designation: a.Designation(),
		Status:      a.Status().String(),
		Notes:       a.Notes(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
		UpdatedAt:   a.UpdatedAt().UnixMilli(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel) (*agent.Agent, error) {
	return agent.ReconstructAgent(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Designation,
		agent.Status(model.Status),
		model.Notes,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

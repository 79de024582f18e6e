package dto

import (
	"time"

	"github.com/instamakaan/instamakaan/internal/domain/agent"
)

type AgentDTO struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone,omitempty"`
	Designation           string    `json:"designation,omitempty"`
	Status                string    `json:"status"`
	Notes                 string    `json:"notes,omitempty"`
	TotalInquiriesHandled int64     `json:"total_inquiries_handled"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func ToAgentDTO(a *agent.Agent, handled int64) *AgentDTO {
	if a == nil {
		return nil
	}
	return &AgentDTO{
		ID:                    a.ID(),
		Name:                  a.Name(),
		Email:                 a.Email(),
		Phone:                 a.Phone(),
		Designation:           a.Designation(),
		Status:                a.Status().String(),
		Notes:                 a.Notes(),
		TotalInquiriesHandled: handled,
		CreatedAt:             a.CreatedAt(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

package agent

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type CreateAgentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Phone       string `json:"phone,omitempty" binding:"max=32"`
	Designation string `json:"designation,omitempty" binding:"max=100"`
	Status      string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Notes       string `json:"notes,omitempty" binding:"max=2000"`
}

func (r *CreateAgentRequest) ToCommand(actor authorization.Actor) usecases.CreateAgentCommand {
	return usecases.CreateAgentCommand{
		Actor:       actor,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Designation: r.Designation,
		Status:      r.Status,
		Notes:       r.Notes,
	}
}

// UpdateAgentRequest replaces the agent's profile. Status is left unchanged
// when omitted.
type UpdateAgentRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email,max=255"`
	Phone       string  `json:"phone,omitempty" binding:"max=32"`
	Designation string  `json:"designation,omitempty" binding:"max=100"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Notes       string  `json:"notes,omitempty" binding:"max=2000"`
}

func (r *UpdateAgentRequest) ToCommand(actor authorization.Actor, agentID string) usecases.UpdateAgentCommand {
	return usecases.UpdateAgentCommand{
		Actor:       actor,
		AgentID:     agentID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Designation: r.Designation,
		Status:      r.Status,
		Notes:       r.Notes,
	}
}

func parseListAgentsQuery(c *gin.Context) usecases.ListAgentsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListAgentsQuery{
		Actor:    authorization.ActorFromContext(c),
		Status:   strings.TrimSpace(c.Query("status")),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func parseAgentID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if err := utils.ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}

func bindError(err error) error {
	return errors.NewValidationError("invalid request body", err.Error())
}

// Package agent provides HTTP handlers for the agent registry.
package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	statsusecases "github.com/instamakaan/instamakaan/internal/application/stats/usecases"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type AgentHandler struct {
	createAgentUC     usecases.CreateAgentExecutor
	updateAgentUC     usecases.UpdateAgentExecutor
	getAgentUC        usecases.GetAgentExecutor
	listAgentsUC      usecases.ListAgentsExecutor
	deleteAgentUC     usecases.DeleteAgentExecutor
	getAgentSummaryUC statsusecases.GetAgentSummaryExecutor
	logger            logger.Interface
}

func NewAgentHandler(
	createAgentUC usecases.CreateAgentExecutor,
	updateAgentUC usecases.UpdateAgentExecutor,
	getAgentUC usecases.GetAgentExecutor,
	listAgentsUC usecases.ListAgentsExecutor,
	deleteAgentUC usecases.DeleteAgentExecutor,
	getAgentSummaryUC statsusecases.GetAgentSummaryExecutor,
	logger logger.Interface,
) *AgentHandler {
	return &AgentHandler{
		createAgentUC:     createAgentUC,
		updateAgentUC:     updateAgentUC,
		getAgentUC:        getAgentUC,
		listAgentsUC:      listAgentsUC,
		deleteAgentUC:     deleteAgentUC,
		getAgentSummaryUC: getAgentSummaryUC,
		logger:            logger,
	}
}

// CreateAgent registers a new agent
// @Summary Create agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateAgentRequest true "Agent profile"
// @Success 201 {object} utils.APIResponse{data=dto.AgentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agent", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.createAgentUC.Execute(c.Request.Context(), req.ToCommand(authorization.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Agent created successfully")
}

// ListAgents lists agents
// @Summary List agents
// @Tags Agents
// @Produce json
// @Security Bearer
// @Param status query string false "active or inactive"
// @Param search query string false "Name or email contains"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context(), parseListAgentsQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Agents, result.Total, result.Page, result.PageSize)
}

// GetAgent returns one agent
// @Summary Get agent
// @Tags Agents
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 200 {object} utils.APIResponse{data=dto.AgentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agentID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAgentUC.Execute(c.Request.Context(), usecases.GetAgentQuery{
		Actor:   authorization.ActorFromContext(c),
		AgentID: agentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateAgent replaces an agent's profile
// @Summary Update agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Param request body UpdateAgentRequest true "Agent profile"
// @Success 200 {object} utils.APIResponse{data=dto.AgentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	agentID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update agent", "agent_id", agentID, "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.updateAgentUC.Execute(c.Request.Context(), req.ToCommand(authorization.ActorFromContext(c), agentID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent updated successfully", result)
}

// DeleteAgent removes an agent with no open inquiries
// @Summary Delete agent
// @Tags Agents
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	agentID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAgentUC.Execute(c.Request.Context(), usecases.DeleteAgentCommand{
		Actor:   authorization.ActorFromContext(c),
		AgentID: agentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetAgentSummary returns every inquiry the agent holds or held
// @Summary Agent summary
// @Description Admins may read any agent; agents only themselves.
// @Tags Agents
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 200 {object} utils.APIResponse{data=statsdto.AgentSummaryDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id}/summary [get]
func (h *AgentHandler) GetAgentSummary(c *gin.Context) {
	agentID, err := parseAgentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAgentSummaryUC.Execute(c.Request.Context(), statsusecases.AgentSummaryQuery{
		Actor:   authorization.ActorFromContext(c),
		AgentID: agentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

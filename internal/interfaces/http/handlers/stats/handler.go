// Package stats provides the read-only reporting endpoints.
package stats

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/application/stats/usecases"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type StatsHandler struct {
	statusCountsUC usecases.GetStatusCountsExecutor
	typeCountsUC   usecases.GetTypeCountsExecutor
	ownerSummaryUC usecases.GetOwnerSummaryExecutor
	dashboardUC    usecases.GetDashboardOverviewExecutor
	logger         logger.Interface
}

func NewStatsHandler(
	statusCountsUC usecases.GetStatusCountsExecutor,
	typeCountsUC usecases.GetTypeCountsExecutor,
	ownerSummaryUC usecases.GetOwnerSummaryExecutor,
	dashboardUC usecases.GetDashboardOverviewExecutor,
	logger logger.Interface,
) *StatsHandler {
	return &StatsHandler{
		statusCountsUC: statusCountsUC,
		typeCountsUC:   typeCountsUC,
		ownerSummaryUC: ownerSummaryUC,
		dashboardUC:    dashboardUC,
		logger:         logger,
	}
}

func countsQuery(c *gin.Context) usecases.CountsQuery {
	return usecases.CountsQuery{
		Actor:   authorization.ActorFromContext(c),
		AgentID: strings.TrimSpace(c.Query("agent_id")),
		OwnerID: strings.TrimSpace(c.Query("owner_id")),
	}
}

// GetStatusCounts counts inquiries per status
// @Summary Status counts
// @Description Agents and owners are always scoped to themselves.
// @Tags Stats
// @Produce json
// @Security Bearer
// @Param agent_id query string false "Scope to an agent (admin only)"
// @Param owner_id query string false "Scope to an owner's listings (admin only)"
// @Success 200 {object} utils.APIResponse{data=dto.StatusCounts}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /stats/status [get]
func (h *StatsHandler) GetStatusCounts(c *gin.Context) {
	result, err := h.statusCountsUC.Execute(c.Request.Context(), countsQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTypeCounts counts inquiries per inquiry type
// @Summary Type counts
// @Tags Stats
// @Produce json
// @Security Bearer
// @Param agent_id query string false "Scope to an agent (admin only)"
// @Param owner_id query string false "Scope to an owner's listings (admin only)"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /stats/types [get]
func (h *StatsHandler) GetTypeCounts(c *gin.Context) {
	result, err := h.typeCountsUC.Execute(c.Request.Context(), countsQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOwnerSummary reports inquiries across an owner's listings
// @Summary Owner summary
// @Tags Stats
// @Produce json
// @Security Bearer
// @Param id path string true "Owner ID"
// @Success 200 {object} utils.APIResponse{data=dto.OwnerSummaryDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /owners/{id}/summary [get]
func (h *StatsHandler) GetOwnerSummary(c *gin.Context) {
	ownerID := c.Param("id")
	if err := utils.ValidateID(ownerID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ownerSummaryUC.Execute(c.Request.Context(), usecases.OwnerSummaryQuery{
		Actor:   authorization.ActorFromContext(c),
		OwnerID: ownerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDashboardOverview returns the admin dashboard figures
// @Summary Dashboard overview
// @Tags Stats
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.DashboardOverviewDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /dashboard/overview [get]
func (h *StatsHandler) GetDashboardOverview(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardOverviewQuery{
		Actor: authorization.ActorFromContext(c),
	})
	if err != nil {
		h.logger.Errorw("failed to build dashboard overview", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

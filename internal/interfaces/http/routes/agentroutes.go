package routes

import (
	"github.com/gin-gonic/gin"

	agenthandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/agent"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
)

type AgentRouteConfig struct {
	AgentHandler   *agenthandlers.AgentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	agents := engine.Group("/agents")
	agents.Use(config.AuthMiddleware.RequireAuth())
	{
		agents.POST("",
			authorization.RequireAdmin(),
			config.AgentHandler.CreateAgent)
		agents.GET("",
			authorization.RequireAdmin(),
			config.AgentHandler.ListAgents)

		// Agents may read their own summary; ownership is checked by the use case.
		agents.GET("/:id/summary",
			authorization.RequireRole(authorization.RoleAdmin, authorization.RoleAgent),
			config.AgentHandler.GetAgentSummary)

		agents.GET("/:id",
			authorization.RequireAdmin(),
			config.AgentHandler.GetAgent)
		agents.PUT("/:id",
			authorization.RequireAdmin(),
			config.AgentHandler.UpdateAgent)
		agents.DELETE("/:id",
			authorization.RequireAdmin(),
			config.AgentHandler.DeleteAgent)
	}
}

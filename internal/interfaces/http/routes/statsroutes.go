package routes

import (
	"github.com/gin-gonic/gin"

	statshandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/stats"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
)

type StatsRouteConfig struct {
	StatsHandler   *statshandlers.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupStatsRoutes(engine *gin.Engine, config *StatsRouteConfig) {
	stats := engine.Group("/stats")
	stats.Use(config.AuthMiddleware.RequireAuth())
	{
		stats.GET("/status", config.StatsHandler.GetStatusCounts)
		stats.GET("/types", config.StatsHandler.GetTypeCounts)
	}

	owners := engine.Group("/owners")
	owners.Use(config.AuthMiddleware.RequireAuth())
	{
		owners.GET("/:id/summary",
			authorization.RequireRole(authorization.RoleAdmin, authorization.RoleOwner),
			config.StatsHandler.GetOwnerSummary)
	}

	dashboard := engine.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		dashboard.GET("/overview", config.StatsHandler.GetDashboardOverview)
	}
}

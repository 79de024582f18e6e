package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/instamakaan/instamakaan/docs"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.Metrics())

	engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	engine.GET("/version", c.hdlrs.healthHandler.Version)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if c.cfg.Server.Mode != gin.ReleaseMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.SetupInquiryRoutes(engine, &routes.InquiryRouteConfig{
		InquiryHandler: c.hdlrs.inquiryHandler,
		AuthMiddleware: c.authMiddleware,
		PublicLimiter:  c.publicLimiter,
	})

	routes.SetupAgentRoutes(engine, &routes.AgentRouteConfig{
		AgentHandler:   c.hdlrs.agentHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupStatsRoutes(engine, &routes.StatsRouteConfig{
		StatsHandler:   c.hdlrs.statsHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

package routes

import (
	"github.com/gin-gonic/gin"

	inquiryhandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/inquiry"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
)

type InquiryRouteConfig struct {
	InquiryHandler *inquiryhandlers.InquiryHandler
	AuthMiddleware *middleware.AuthMiddleware
	// PublicLimiter guards the anonymous create endpoint. Nil disables limiting.
	PublicLimiter *middleware.RateLimiter
}

func SetupInquiryRoutes(engine *gin.Engine, config *InquiryRouteConfig) {
	inquiries := engine.Group("/inquiries")

	// The public site posts here without credentials.
	inquiries.POST("",
		config.PublicLimiter.Limit(),
		config.InquiryHandler.CreateInquiry)

	authed := inquiries.Group("")
	authed.Use(config.AuthMiddleware.RequireAuth())
	{
		authed.GET("",
			config.InquiryHandler.ListInquiries)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		authed.GET("/:id/history",
			config.InquiryHandler.GetHistory)
		authed.POST("/:id/assign",
			authorization.RequireAdmin(),
			config.InquiryHandler.AssignInquiry)
		authed.POST("/:id/unassign",
			authorization.RequireAdmin(),
			config.InquiryHandler.UnassignInquiry)
		authed.POST("/:id/advance",
			config.InquiryHandler.AdvanceStatus)
		authed.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.InquiryHandler.SetStatus)
		authed.POST("/:id/notes",
			config.InquiryHandler.AddNote)

		authed.GET("/:id",
			config.InquiryHandler.GetInquiry)
	}
}

package http

import (
	"github.com/instamakaan/instamakaan/internal/interfaces/http/handlers"
	agentHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/agent"
	inquiryHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/inquiry"
	statsHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/stats"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler  *handlers.HealthHandler
	inquiryHandler *inquiryHandlers.InquiryHandler
	agentHandler   *agentHandlers.AgentHandler
	statsHandler   *statsHandlers.StatsHandler
}

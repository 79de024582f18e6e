package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/infrastructure/config"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter builds the dependency container and returns a router ready for
// SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: container}, nil
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// Start launches background components owned by the router.
func (r *Router) Start() error {
	return r.container.Start()
}

// Shutdown gracefully stops all background components
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}

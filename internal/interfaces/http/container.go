package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/infrastructure/auth"
	"github.com/instamakaan/instamakaan/internal/infrastructure/config"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/pubsub"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/services/markdown"
)

// Container holds infrastructure components, repositories, use cases,
// handlers and the event subscribers, and wires them together.
// Shutdown releases everything it started.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	txMgr      *db.TransactionManager
	enforcer   *permission.Enforcer
	dispatcher *events.InMemoryEventDispatcher
	renderer   markdown.Renderer
	jwtSvc     *auth.JWTService

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	publicLimiter  *middleware.RateLimiter

	// Cross-instance event relay
	inquiryEventBus *pubsub.RedisInquiryEventBus

	shutdownOnce sync.Once
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Authorization, Dispatcher
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Event subscribers - notification, Redis relay, metrics
	if err := c.initSubscribers(); err != nil {
		return nil, err
	}

	// Section 4: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Start launches the event dispatcher.
func (c *Container) Start() error {
	return c.dispatcher.Start()
}

// Shutdown stops the dispatcher, draining queued events, then closes Redis.
func (c *Container) Shutdown(ctx context.Context) {
	c.shutdownOnce.Do(func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := c.dispatcher.Stop(); err != nil {
				c.log.Warnw("failed to stop event dispatcher", "error", err)
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			c.log.Warnw("event dispatcher did not stop before shutdown deadline")
		}

		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close redis client", "error", err)
			}
		}
	})
}

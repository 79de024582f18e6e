package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	agentUsecases "github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	inquiryUsecases "github.com/instamakaan/instamakaan/internal/application/inquiry/usecases"
	"github.com/instamakaan/instamakaan/internal/application/notification"
	notificationUsecases "github.com/instamakaan/instamakaan/internal/application/notification/usecases"
	statsUsecases "github.com/instamakaan/instamakaan/internal/application/stats/usecases"
	"github.com/instamakaan/instamakaan/internal/domain/shared/events"
	"github.com/instamakaan/instamakaan/internal/infrastructure/auth"
	"github.com/instamakaan/instamakaan/internal/infrastructure/config"
	"github.com/instamakaan/instamakaan/internal/infrastructure/email"
	"github.com/instamakaan/instamakaan/internal/infrastructure/metrics"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/pubsub"
	"github.com/instamakaan/instamakaan/internal/infrastructure/ratelimit"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/handlers"
	agentHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/agent"
	inquiryHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/inquiry"
	statsHandlers "github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/stats"
	"github.com/instamakaan/instamakaan/internal/interfaces/http/middleware"
	"github.com/instamakaan/instamakaan/internal/shared/db"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/services/markdown"
)

const (
	eventBufferSize      = 256
	redisConnectTimeout  = 5 * time.Second
	publicInquiryLimiter = "public-inquiry"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Authorization, Dispatcher
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	redisClient, err := initRedis(cfg, log)
	if err != nil {
		return err
	}
	c.redis = redisClient

	c.repos = newRepositories(c.db)
	c.txMgr = db.NewTransactionManager(c.db)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log)
	c.renderer = markdown.NewRenderer()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	if c.redis != nil {
		c.publicLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			publicInquiryLimiter,
			cfg.RateLimit.PublicInquiryPerMinute,
			log,
		)
	} else {
		log.Warnw("redis disabled, public inquiry endpoint is not rate limited")
	}

	return nil
}

// initRedis creates and tests the Redis client connection. A disabled Redis
// yields a nil client.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos
	authz := c.enforcer

	c.ucs = &allUseCases{
		createInquiryUC:   inquiryUsecases.NewCreateInquiryUseCase(repos.inquiryRepo, repos.propertyDirectory, c.renderer, c.dispatcher, log),
		getInquiryUC:      inquiryUsecases.NewGetInquiryUseCase(repos.inquiryRepo, repos.propertyDirectory, authz, c.renderer, log),
		listInquiriesUC:   inquiryUsecases.NewListInquiriesUseCase(repos.inquiryRepo, repos.propertyDirectory, authz, log),
		assignInquiryUC:   inquiryUsecases.NewAssignInquiryUseCase(repos.inquiryRepo, repos.agentRepo, c.txMgr, authz, c.dispatcher, log),
		unassignInquiryUC: inquiryUsecases.NewUnassignInquiryUseCase(repos.inquiryRepo, c.txMgr, authz, c.dispatcher, log),
		advanceStatusUC:   inquiryUsecases.NewAdvanceStatusUseCase(repos.inquiryRepo, c.txMgr, authz, c.dispatcher, log),
		setStatusUC:       inquiryUsecases.NewSetStatusUseCase(repos.inquiryRepo, c.txMgr, authz, c.dispatcher, log),
		addNoteUC:         inquiryUsecases.NewAddNoteUseCase(repos.inquiryRepo, c.txMgr, authz, c.dispatcher, c.renderer, log),
		getHistoryUC:      inquiryUsecases.NewGetHistoryUseCase(repos.inquiryRepo, authz, c.renderer, log),

		createAgentUC: agentUsecases.NewCreateAgentUseCase(repos.agentRepo, authz, log),
		updateAgentUC: agentUsecases.NewUpdateAgentUseCase(repos.agentRepo, repos.inquiryRepo, c.txMgr, authz, log),
		getAgentUC:    agentUsecases.NewGetAgentUseCase(repos.agentRepo, repos.inquiryRepo, authz, log),
		listAgentsUC:  agentUsecases.NewListAgentsUseCase(repos.agentRepo, repos.inquiryRepo, authz, log),
		deleteAgentUC: agentUsecases.NewDeleteAgentUseCase(repos.agentRepo, repos.inquiryRepo, c.txMgr, authz, log),

		statusCountsUC: statsUsecases.NewGetStatusCountsUseCase(repos.inquiryRepo, repos.propertyDirectory, authz, log),
		typeCountsUC:   statsUsecases.NewGetTypeCountsUseCase(repos.inquiryRepo, repos.propertyDirectory, authz, log),
		agentSummaryUC: statsUsecases.NewGetAgentSummaryUseCase(repos.inquiryRepo, repos.agentRepo, authz, c.renderer, log),
		ownerSummaryUC: statsUsecases.NewGetOwnerSummaryUseCase(repos.inquiryRepo, repos.propertyDirectory, authz, log),
		dashboardUC:    statsUsecases.NewGetDashboardOverviewUseCase(repos.inquiryRepo, repos.agentRepo, authz, log),
	}
}

// ============================================================
// Section 3: Event subscribers
// ============================================================

// initSubscribers attaches the post-commit consumers of inquiry events.
// None of them can fail a command: the dispatcher runs them after commit.
func (c *Container) initSubscribers() error {
	log := c.log

	mailer, err := email.NewAssignmentMailer(c.cfg.Email, log)
	if err != nil {
		return fmt.Errorf("failed to initialize assignment mailer: %w", err)
	}
	c.ucs.notifyAssignmentUC = notificationUsecases.NewNotifyAssignmentUseCase(
		c.repos.agentRepo, mailer, c.cfg.Notification.DashboardURL, log,
	)
	if err := notification.NewAssignmentSubscriber(c.ucs.notifyAssignmentUC, log).Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to register assignment notifier: %w", err)
	}

	if err := metrics.NewEventRecorder().Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to register event metrics: %w", err)
	}

	if c.redis != nil {
		c.inquiryEventBus = pubsub.NewRedisInquiryEventBus(c.redis, c.cfg.Notification.EventChannel, log)
		if err := c.inquiryEventBus.Register(c.dispatcher); err != nil {
			return fmt.Errorf("failed to register inquiry event relay: %w", err)
		}
	}

	return nil
}

// ============================================================
// Section 4: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(checks, log),
		inquiryHandler: inquiryHandlers.NewInquiryHandler(
			ucs.createInquiryUC,
			ucs.getInquiryUC,
			ucs.listInquiriesUC,
			ucs.assignInquiryUC,
			ucs.unassignInquiryUC,
			ucs.advanceStatusUC,
			ucs.setStatusUC,
			ucs.addNoteUC,
			ucs.getHistoryUC,
			log,
		),
		agentHandler: agentHandlers.NewAgentHandler(
			ucs.createAgentUC,
			ucs.updateAgentUC,
			ucs.getAgentUC,
			ucs.listAgentsUC,
			ucs.deleteAgentUC,
			ucs.agentSummaryUC,
			log,
		),
		statsHandler: statsHandlers.NewStatsHandler(
			ucs.statusCountsUC,
			ucs.typeCountsUC,
			ucs.ownerSummaryUC,
			ucs.dashboardUC,
			log,
		),
	}
}

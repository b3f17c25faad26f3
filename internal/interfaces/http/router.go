// Package http assembles the HTTP interface layer: middleware, handlers,
// and routes, wired to the application use cases.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketUsecases "github.com/sovoz-hq/sovoz/internal/application/ticket/usecases"
	userUsecases "github.com/sovoz-hq/sovoz/internal/application/user/usecases"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/auth"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/cache"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/config"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/email"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/ratelimit"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/repository"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers"
	ticketHandlers "github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers/ticket"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/middleware"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/routes"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// Router holds the configured gin engine.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// NewRouter builds the full HTTP stack: repositories, use cases,
// handlers, middleware, and routes.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.ErrorHandler())

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	statsRepo := repository.NewStatsRepository(db, log)

	// Redis backs the statistics cache and the rate limiter. Without it
	// statistics are computed per request and limits are tracked
	// in-process.
	var statsCache ticketUsecases.StatisticsCache = cache.NewNoopStatisticsCache()
	var limiter ratelimit.RateLimiter = ratelimit.NewMemoryRateLimiter()
	if cfg.Redis.Enabled {
		client := initRedis(cfg, log)
		statsCache = cache.NewRedisStatisticsCache(client)
		limiter = ratelimit.NewRedisRateLimiter(client)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)

	mailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	resetTokenTTL := time.Duration(cfg.Auth.Token.ResetExpiresMinutes) * time.Minute

	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getCurrentUserUC := userUsecases.NewGetCurrentUserUseCase(userRepo, log)
	requestResetUC := userUsecases.NewRequestPasswordResetUseCase(userRepo, mailService, resetTokenTTL, log)
	resetPasswordUC := userUsecases.NewResetPasswordUseCase(userRepo, hasher, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, statsCache, cfg.Upload.MaxTotalBytes, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketUsecases.NewChangeStatusUseCase(ticketRepo, statsCache, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(ticketRepo, log)
	getAttachmentUC := ticketUsecases.NewGetAttachmentUseCase(ticketRepo, log)
	getStatisticsUC := ticketUsecases.NewGetStatisticsUseCase(statsRepo, statsCache, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getCurrentUserUC, requestResetUC, resetPasswordUC, log)
	ticketHandler := ticketHandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC,
		changeStatusUC, addCommentUC, getAttachmentUC, log,
	)
	statisticsHandler := handlers.NewStatisticsHandler(getStatisticsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)
	rateLimit := middleware.RateLimit(limiter, ratelimit.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
	}, log)

	engine.GET("/health", healthCheck)

	api := engine.Group("/api")
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimit,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimit,
	})
	routes.SetupStatisticsRoutes(api, &routes.StatisticsRouteConfig{
		StatisticsHandler: statisticsHandler,
		AuthMiddleware:    authMiddleware,
	})

	return &Router{
		engine: engine,
		logger: log,
	}
}

// initRedis connects to Redis and fails hard when it is enabled but
// unreachable. A half-configured cache is worse than none.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "addr", cfg.Redis.GetAddr(), "error", err)
	}

	log.Infow("redis connected", "addr", cfg.Redis.GetAddr(), "db", cfg.Redis.DB)
	return client
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	r.logger.Infow("starting http server", "addr", addr)
	return r.engine.Run(addr)
}

package main

import (
	"context"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/notes-service/internal/api/http"
	"github.com/spec-kit/notes-service/internal/api/http/handlers"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/config"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/observability"
	"github.com/spec-kit/notes-service/internal/persistence"
	"github.com/spec-kit/notes-service/internal/repository"
	"github.com/spec-kit/notes-service/internal/service"
	"github.com/spec-kit/notes-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if _, err := auth.ParseLifetime(cfg.Auth.TokenLifetime); err != nil {
		logger.Warn("unusable AUTH_TOKEN_LIFETIME, tokens will use the 7-day fallback",
			zap.String("value", cfg.Auth.TokenLifetime), zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	noteRepo := repository.NewNoteRepository(pool)
	blacklist := auth.NewRedisBlacklist(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo, blacklist, dispatcher)
	noteService := service.NewNoteService(noteRepo, dispatcher)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), blacklist, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Notes:          handlers.NewNotesHandler(noteService),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   httptransport.LoginRateLimiter(cfg.Auth.LoginRatePerMin, cfg.Auth.LoginBurst),
	})

	var metricsServer *nethttp.Server
	if cfg.Metrics.Addr != "" {
		metricsServer = &nethttp.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler()}
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.Metrics.Addr))
			if err := metricsServer.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
				logger.Error("metrics listener", zap.Error(err))
			}
		}()
	}

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	if metricsServer != nil {
		_ = metricsServer.Shutdown(context.Background())
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

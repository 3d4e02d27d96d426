package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/jewelflow/workshop-service/internal/api/http"
	"github.com/jewelflow/workshop-service/internal/api/http/handlers"
	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/config"
	"github.com/jewelflow/workshop-service/internal/events"
	"github.com/jewelflow/workshop-service/internal/observability"
	"github.com/jewelflow/workshop-service/internal/persistence"
	"github.com/jewelflow/workshop-service/internal/repository"
	"github.com/jewelflow/workshop-service/internal/service"
	"github.com/jewelflow/workshop-service/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	dailyLogRepo := repository.NewDailyLogRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	sessionStore := auth.NewRedisSessionStore(redis.Client)

	authService := service.NewAuthService(cfg.Auth, userRepo, sessionStore)
	staffService := service.NewStaffService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	pipelineService := service.NewPipelineService(service.PipelineDependencies{
		JobRepo:    jobRepo,
		Dispatcher: dispatcher,
	})
	dailyLogService := service.NewDailyLogService(dailyLogRepo, dispatcher, nil)
	reportService := service.NewReportService(dailyLogRepo, userRepo, nil)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessionStore, userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Staff:          handlers.NewStaffHandler(staffService),
		Jobs:           handlers.NewJobsHandler(pipelineService),
		DailyLogs:      handlers.NewDailyLogsHandler(dailyLogService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/hireboard/recruitment-service/internal/api/http"
	"github.com/hireboard/recruitment-service/internal/api/http/handlers"
	"github.com/hireboard/recruitment-service/internal/auth"
	"github.com/hireboard/recruitment-service/internal/config"
	"github.com/hireboard/recruitment-service/internal/events"
	"github.com/hireboard/recruitment-service/internal/observability"
	"github.com/hireboard/recruitment-service/internal/persistence"
	"github.com/hireboard/recruitment-service/internal/repository"
	"github.com/hireboard/recruitment-service/internal/repository/memory"
	"github.com/hireboard/recruitment-service/internal/service"
	"github.com/hireboard/recruitment-service/internal/session"
	"github.com/hireboard/recruitment-service/internal/worker"
)

type repositories struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

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

	dependencies := map[string]handlers.Pinger{}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var repos repositories
	if pool := pg.PoolHandle(); pool != nil {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		repos = repositories{
			users:        repository.NewUserRepository(pool),
			jobs:         repository.NewJobRepository(pool),
			applications: repository.NewApplicationRepository(pool),
		}
		dependencies["postgres"] = pg
	} else {
		store := memory.NewStore()
		repos = repositories{users: store.Users(), jobs: store.Jobs(), applications: store.Applications()}
	}

	var sessions session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		logger.Warn("SESSION_BACKEND=memory; sessions are lost on restart")
		sessions = session.NewMemoryStore()
	default:
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessions = session.NewRedisStore(redis.Client, cfg.Session.KeyPrefix)
		dependencies["redis"] = redis
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   repos.users,
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	jobBoard := service.NewJobBoardService(service.JobBoardDependencies{
		JobRepo:         repos.jobs,
		ApplicationRepo: repos.applications,
		Sessions:        sessions,
		Dispatcher:      dispatcher,
		Logger:          logger,
		MaxResumeBytes:  cfg.Upload.MaxResumeBytes,
	})
	recruiterService := service.NewRecruiterService(service.RecruiterDependencies{
		JobRepo:         repos.jobs,
		ApplicationRepo: repos.applications,
		Sessions:        sessions,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:        repos.users,
		JobRepo:         repos.jobs,
		ApplicationRepo: repos.applications,
	})
	dashboardService := service.NewDashboardService(
		service.NewApplicantDashboard(jobBoard),
		service.NewRecruiterDashboard(recruiterService),
		service.NewAdminDashboard(adminService),
	)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions)

	app := httptransport.NewApp(cfg.App.Name, cfg.Upload.MaxResumeBytes)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, dependencies),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Applicant:      handlers.NewApplicantHandler(jobBoard, cfg.Upload.MaxResumeBytes),
		Recruiter:      handlers.NewRecruiterHandler(recruiterService),
		Admin:          handlers.NewAdminHandler(adminService),
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

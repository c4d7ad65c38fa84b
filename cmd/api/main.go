package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/fieldops/crew-scheduler/internal/api/http"
	"github.com/fieldops/crew-scheduler/internal/api/http/handlers"
	"github.com/fieldops/crew-scheduler/internal/config"
	"github.com/fieldops/crew-scheduler/internal/observability"
	"github.com/fieldops/crew-scheduler/internal/persistence"
	"github.com/fieldops/crew-scheduler/internal/repository"
	"github.com/fieldops/crew-scheduler/internal/service"
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

	store := persistence.NewStore(cfg.Storage.DataDir, logger)
	cache := persistence.NewCache(cfg.Redis, logger)
	defer cache.Close()

	employeeRepo := repository.NewEmployeeRepository(store)
	jobRepo := repository.NewJobRepository(store)
	assignmentRepo := repository.NewAssignmentRepository(store)

	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo: employeeRepo,
		Cache:        cache,
		Logger:       logger,
	})
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:        jobRepo,
		EmployeeRepo:   employeeRepo,
		AssignmentRepo: assignmentRepo,
		Cache:          cache,
		Logger:         logger,
	})
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		EmployeeRepo:   employeeRepo,
		JobRepo:        jobRepo,
		AssignmentRepo: assignmentRepo,
		Cache:          cache,
		Logger:         logger,
	})
	scheduleService := service.NewScheduleService(service.ScheduleDependencies{
		EmployeeRepo:   employeeRepo,
		JobRepo:        jobRepo,
		AssignmentRepo: assignmentRepo,
		Cache:          cache,
		Logger:         logger,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cache, cfg.App.Version),
		Employees:   handlers.NewEmployeesHandler(employeeService),
		Jobs:        handlers.NewJobsHandler(jobService),
		Assignments: handlers.NewAssignmentsHandler(assignmentService),
		Schedule:    handlers.NewScheduleHandler(scheduleService),
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

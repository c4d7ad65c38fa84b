package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Employees   *handlers.EmployeesHandler
	Jobs        *handlers.JobsHandler
	Assignments *handlers.AssignmentsHandler
	Schedule    *handlers.ScheduleHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	employees := app.Group("/employees")
	employees.Post("", cfg.Employees.Create)
	employees.Get("", cfg.Employees.List)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Patch("/:id/availability", cfg.Employees.SetAvailability)

	jobs := app.Group("/jobs")
	jobs.Post("", cfg.Jobs.Create)
	jobs.Get("", cfg.Jobs.List)
	// Fixed paths before the :id wildcard.
	jobs.Get("/upcoming", cfg.Jobs.Upcoming)
	jobs.Get("/statistics", cfg.Jobs.Statistics)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Put("/:id", cfg.Jobs.Update)

	assign := app.Group("/assign")
	assign.Post("", cfg.Assignments.Create)
	assign.Delete("/:id", cfg.Assignments.Delete)

	app.Get("/schedule", cfg.Schedule.Get)
}

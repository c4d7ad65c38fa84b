package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/api/dto"
	"github.com/fieldops/crew-scheduler/internal/service"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// JobsHandler manages job endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// Create POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Create(c.Context(), req.Name, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Update PUT /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Update(c.Context(), c.Params("id"), req.Name, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// List GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter := service.JobFilter{
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
		MinDuration: c.Query("minDuration"),
		MaxDuration: c.Query("maxDuration"),
	}

	jobs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobDetailResponse(job)})
}

// Upcoming GET /jobs/upcoming.
func (h *JobsHandler) Upcoming(c *fiber.Ctx) error {
	jobs, err := h.service.Upcoming(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Statistics GET /jobs/statistics.
func (h *JobsHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

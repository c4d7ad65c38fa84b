package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/service"
)

// ScheduleHandler serves the enriched schedule view.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: scheduleService}
}

// Get GET /schedule.
func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	schedule, err := h.service.Enriched(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": schedule})
}

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/api/dto"
	"github.com/fieldops/crew-scheduler/internal/service"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// AssignmentsHandler manages assignment endpoints.
type AssignmentsHandler struct {
	service *service.AssignmentService
}

// NewAssignmentsHandler constructs handler.
func NewAssignmentsHandler(assignmentService *service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{service: assignmentService}
}

// Create POST /assign.
func (h *AssignmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.EmployeeID) == "" || strings.TrimSpace(req.JobID) == "" {
		return apperrors.NewValidationError("employeeId and jobId required", nil)
	}

	assignment, err := h.service.Create(c.Context(), req.EmployeeID, req.JobID, req.Notes)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAssignmentResponse(assignment)})
}

// Delete DELETE /assign/:id.
func (h *AssignmentsHandler) Delete(c *fiber.Ctx) error {
	assignmentID := c.Params("id")
	if err := h.service.Delete(c.Context(), assignmentID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deletedId": assignmentID}})
}

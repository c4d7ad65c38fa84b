package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/api/dto"
	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/service"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// EmployeesHandler manages employee endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// Create POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	employee, err := h.service.Create(c.Context(), req.Name, domain.EmployeeRole(req.Role), availability)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	filter := service.EmployeeFilter{}
	if availableStr := c.Query("available"); availableStr != "" {
		available, err := strconv.ParseBool(availableStr)
		if err != nil {
			return apperrors.NewInvalidParameter("available", availableStr)
		}
		filter.Available = &available
	}
	if role := c.Query("role"); role != "" {
		filter.Role = &role
	}

	employees, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.NewEmployeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	employee, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// SetAvailability PATCH /employees/:id/availability.
func (h *EmployeesHandler) SetAvailability(c *fiber.Ctx) error {
	var req dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Availability == nil {
		return apperrors.NewValidationError("availability required", map[string]any{
			"availability": "availability must be provided",
		})
	}

	employee, err := h.service.SetAvailability(c.Context(), c.Params("id"), *req.Availability)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

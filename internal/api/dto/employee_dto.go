package dto

import "github.com/fieldops/crew-scheduler/internal/domain"

// CreateEmployeeRequest payload. Availability defaults to true when omitted.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Availability *bool  `json:"availability"`
}

// UpdateAvailabilityRequest payload.
type UpdateAvailabilityRequest struct {
	Availability *bool `json:"availability"`
}

// EmployeeResponse response.
type EmployeeResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Role         domain.EmployeeRole `json:"role"`
	Availability bool                `json:"availability"`
}

// NewEmployeeResponse maps a domain employee.
func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Availability: e.Availability,
	}
}

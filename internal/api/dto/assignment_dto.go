package dto

import (
	"time"

	"github.com/fieldops/crew-scheduler/internal/domain"
)

// CreateAssignmentRequest payload.
type CreateAssignmentRequest struct {
	EmployeeID string  `json:"employeeId"`
	JobID      string  `json:"jobId"`
	Notes      *string `json:"notes"`
}

// AssignmentResponse response.
type AssignmentResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	JobID      string    `json:"jobId"`
	AssignedAt time.Time `json:"assignedAt"`
	Notes      *string   `json:"notes,omitempty"`
}

// NewAssignmentResponse maps a domain assignment.
func NewAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		JobID:      a.JobID,
		AssignedAt: a.AssignedAt,
		Notes:      a.Notes,
	}
}

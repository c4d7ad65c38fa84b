package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// Assignment links one employee to one job at a point in time.
type Assignment struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	JobID      string    `json:"jobId"`
	AssignedAt time.Time `json:"assignedAt"`
	Notes      *string   `json:"notes,omitempty"`
}

const assignmentNotesMaxLen = 500

// NewAssignment validates the fields and constructs an Assignment with a
// generated id. All field violations are reported together in the returned
// error's details.
func NewAssignment(employeeID, jobID string, notes *string, assignedAt time.Time) (*Assignment, error) {
	details := map[string]any{}

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		details["employeeId"] = "employeeId cannot be empty or only whitespace"
	}

	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		details["jobId"] = "jobId cannot be empty or only whitespace"
	}

	if notes != nil && utf8.RuneCountInString(*notes) > assignmentNotesMaxLen {
		details["notes"] = "notes cannot exceed 500 characters"
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid assignment", details)
	}

	return &Assignment{
		ID:         NewAssignmentID(),
		EmployeeID: employeeID,
		JobID:      jobID,
		AssignedAt: assignedAt,
		Notes:      notes,
	}, nil
}

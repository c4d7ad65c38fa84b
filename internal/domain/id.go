package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Entity id prefixes. Assignments carry a distinct marker so an assignment id
// can never be mistaken for an employee or job id.
const (
	employeeIDPrefix   = "EMP"
	jobIDPrefix        = "JOB"
	assignmentIDPrefix = "ASSIGN"
)

func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(hex[:8])
}

// NewEmployeeID generates an employee identifier.
func NewEmployeeID() string { return newID(employeeIDPrefix) }

// NewJobID generates a job identifier.
func NewJobID() string { return newID(jobIDPrefix) }

// NewAssignmentID generates an assignment identifier.
func NewAssignmentID() string { return newID(assignmentIDPrefix) }

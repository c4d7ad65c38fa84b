package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// EmployeeRole enumerates crew role types.
type EmployeeRole string

const (
	RoleTCP        EmployeeRole = "TCP"
	RoleLCT        EmployeeRole = "LCT"
	RoleSupervisor EmployeeRole = "Supervisor"
)

// ValidRoles lists every accepted role value.
var ValidRoles = []EmployeeRole{RoleTCP, RoleLCT, RoleSupervisor}

// IsValid reports whether the role is one of the accepted values.
func (r EmployeeRole) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// Employee models a crew member who can be assigned to jobs.
type Employee struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         EmployeeRole `json:"role"`
	Availability bool         `json:"availability"`
}

const (
	employeeNameMinLen = 2
	employeeNameMaxLen = 100
)

// NewEmployee validates the fields and constructs an Employee with a generated
// id. Whitespace in the name is collapsed before validation. All field
// violations are reported together in the returned error's details.
func NewEmployee(name string, role EmployeeRole, availability bool) (*Employee, error) {
	details := map[string]any{}

	cleaned := strings.Join(strings.Fields(name), " ")
	nameLen := utf8.RuneCountInString(cleaned)
	switch {
	case cleaned == "":
		details["name"] = "name cannot be empty or only whitespace"
	case nameLen < employeeNameMinLen || nameLen > employeeNameMaxLen:
		details["name"] = fmt.Sprintf("name must be between %d and %d characters", employeeNameMinLen, employeeNameMaxLen)
	case !validEmployeeName(cleaned):
		details["name"] = "name contains invalid characters"
	}

	if !role.IsValid() {
		details["role"] = fmt.Sprintf("role must be one of: %s", joinRoles())
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid employee", details)
	}

	return &Employee{
		ID:           NewEmployeeID(),
		Name:         cleaned,
		Role:         role,
		Availability: availability,
	}, nil
}

// MarkUnavailable flags the employee as not assignable.
func (e *Employee) MarkUnavailable() { e.Availability = false }

// MarkAvailable flags the employee as assignable.
func (e *Employee) MarkAvailable() { e.Availability = true }

// validEmployeeName accepts letters, spaces, hyphens and apostrophes.
func validEmployeeName(name string) bool {
	for _, c := range name {
		if !unicode.IsLetter(c) && c != ' ' && c != '-' && c != '\'' {
			return false
		}
	}
	return true
}

func joinRoles() string {
	parts := make([]string, 0, len(ValidRoles))
	for _, r := range ValidRoles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ", ")
}

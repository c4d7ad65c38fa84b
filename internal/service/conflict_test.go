package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fieldops/crew-scheduler/internal/domain"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

func lookupOf[T any](items map[string]*T) func(string) *T {
	return func(id string) *T { return items[id] }
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code)
}

func conflictFixture(t *testing.T) (map[string]*domain.Employee, map[string]*domain.Job) {
	t.Helper()

	available, err := domain.NewEmployee("Jane Doe", domain.RoleTCP, true)
	require.NoError(t, err)
	available.ID = "E1"

	unavailable, err := domain.NewEmployee("John Roe", domain.RoleLCT, false)
	require.NoError(t, err)
	unavailable.ID = "E2"

	day := func(hour int) time.Time {
		return time.Date(2024, 1, 30, hour, 0, 0, 0, time.UTC)
	}
	morning, err := domain.NewJob("Morning Shift", day(8), day(16))
	require.NoError(t, err)
	morning.ID = "J1"

	evening, err := domain.NewJob("Evening Shift", day(15), day(23))
	require.NoError(t, err)
	evening.ID = "J2"

	night, err := domain.NewJob("Night Shift", day(16), day(23))
	require.NoError(t, err)
	night.ID = "J3"

	employees := map[string]*domain.Employee{"E1": available, "E2": unavailable}
	jobs := map[string]*domain.Job{"J1": morning, "J2": evening, "J3": night}
	return employees, jobs
}

func TestValidateAssignmentSuccess(t *testing.T) {
	t.Parallel()

	employees, jobs := conflictFixture(t)

	employee, job, err := ValidateAssignment("E1", "J1", lookupOf(employees), lookupOf(jobs), nil)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", employee.Name)
	require.Equal(t, "Morning Shift", job.Name)
}

func TestValidateAssignmentDecisionOrder(t *testing.T) {
	t.Parallel()

	employees, jobs := conflictFixture(t)
	assignedToMorning := []domain.Assignment{{ID: "A1", EmployeeID: "E1", JobID: "J1"}}

	tests := []struct {
		name       string
		employeeID string
		jobID      string
		existing   []domain.Assignment
		wantCode   string
	}{
		{"unknown employee", "NOPE", "J1", nil, "EMPLOYEE_NOT_FOUND"},
		{"unknown job", "E1", "NOPE", nil, "JOB_NOT_FOUND"},
		{"unknown employee wins over unknown job", "NOPE", "ALSO_NOPE", nil, "EMPLOYEE_NOT_FOUND"},
		{"unavailable employee", "E2", "J1", nil, "EMPLOYEE_UNAVAILABLE"},
		{"double booking", "E1", "J1", assignedToMorning, "DOUBLE_BOOKING"},
		{"time overlap", "E1", "J2", assignedToMorning, "TIME_OVERLAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ValidateAssignment(tt.employeeID, tt.jobID, lookupOf(employees), lookupOf(jobs), tt.existing)
			requireCode(t, err, tt.wantCode)
		})
	}
}

func TestValidateAssignmentTouchingWindowsAllowed(t *testing.T) {
	t.Parallel()

	employees, jobs := conflictFixture(t)
	existing := []domain.Assignment{{ID: "A1", EmployeeID: "E1", JobID: "J1"}}

	// J3 starts exactly when J1 ends; half-open windows do not overlap.
	_, job, err := ValidateAssignment("E1", "J3", lookupOf(employees), lookupOf(jobs), existing)
	require.NoError(t, err)
	require.Equal(t, "Night Shift", job.Name)
}

func TestValidateAssignmentChecksAllExisting(t *testing.T) {
	t.Parallel()

	employees, jobs := conflictFixture(t)
	existing := []domain.Assignment{
		{ID: "A1", EmployeeID: "E1", JobID: "J3"},
		{ID: "A2", EmployeeID: "E1", JobID: "J1"},
	}

	// J2 clears J3 but overlaps J1, the second existing assignment.
	_, _, err := ValidateAssignment("E1", "J2", lookupOf(employees), lookupOf(jobs), existing)
	requireCode(t, err, "TIME_OVERLAP")
}

func TestValidateAssignmentSkipsStaleJobReferences(t *testing.T) {
	t.Parallel()

	employees, jobs := conflictFixture(t)
	existing := []domain.Assignment{{ID: "A1", EmployeeID: "E1", JobID: "DELETED_JOB"}}

	_, _, err := ValidateAssignment("E1", "J1", lookupOf(employees), lookupOf(jobs), existing)
	require.NoError(t, err)
}

package service

import (
	"github.com/fieldops/crew-scheduler/internal/domain"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// EmployeeLookup resolves an employee by id; nil means absent.
type EmployeeLookup func(id string) *domain.Employee

// JobLookup resolves a job by id; nil means absent.
type JobLookup func(id string) *domain.Job

// ValidateAssignment decides whether an employee may be assigned to a job. It
// is pure: all state comes in through the lookups and the employee's existing
// assignments. The first failing rule wins, in this fixed order:
//
//  1. employee exists
//  2. job exists
//  3. employee is available
//  4. no existing assignment to the same job (double booking)
//  5. no existing assignment whose job's time window overlaps the candidate's
//
// On success the resolved employee and job are returned.
func ValidateAssignment(
	employeeID, jobID string,
	employees EmployeeLookup,
	jobs JobLookup,
	existing []domain.Assignment,
) (*domain.Employee, *domain.Job, error) {
	employee := employees(employeeID)
	if employee == nil {
		return nil, nil, apperrors.NewEmployeeNotFound(employeeID)
	}

	job := jobs(jobID)
	if job == nil {
		return nil, nil, apperrors.NewJobNotFound(jobID)
	}

	if !employee.Availability {
		return nil, nil, apperrors.NewEmployeeUnavailable(employee.Name)
	}

	for _, a := range existing {
		if a.JobID == jobID {
			return nil, nil, apperrors.NewDoubleBooking(employee.Name, job.Name)
		}
	}

	for _, a := range existing {
		existingJob := jobs(a.JobID)
		if existingJob == nil {
			// Stale reference; nothing to overlap with.
			continue
		}
		if job.OverlapsWith(existingJob) {
			return nil, nil, apperrors.NewTimeOverlap(employee.Name, job.Name, existingJob.Name)
		}
	}

	return employee, job, nil
}

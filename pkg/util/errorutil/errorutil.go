package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports entity construction failures. Details carries one
// entry per violated field so callers see every problem at once.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewEmployeeNotFound(employeeID string) error {
	return NewDomainError(
		"EMPLOYEE_NOT_FOUND",
		fmt.Sprintf("Employee with id '%s' not found", employeeID),
		http.StatusNotFound,
		map[string]any{"employee_id": employeeID},
	)
}

func NewJobNotFound(jobID string) error {
	return NewDomainError(
		"JOB_NOT_FOUND",
		fmt.Sprintf("Job with id '%s' not found", jobID),
		http.StatusNotFound,
		map[string]any{"job_id": jobID},
	)
}

func NewAssignmentNotFound(assignmentID string) error {
	return NewDomainError(
		"ASSIGNMENT_NOT_FOUND",
		fmt.Sprintf("Assignment with id '%s' not found", assignmentID),
		http.StatusNotFound,
		map[string]any{"assignment_id": assignmentID},
	)
}

func NewEmployeeUnavailable(name string) error {
	return NewDomainError(
		"EMPLOYEE_UNAVAILABLE",
		fmt.Sprintf("Employee '%s' is currently unavailable for assignment", name),
		http.StatusBadRequest,
		nil,
	)
}

func NewDoubleBooking(employeeName, jobName string) error {
	return NewDomainError(
		"DOUBLE_BOOKING",
		fmt.Sprintf("Employee '%s' is already assigned to '%s'", employeeName, jobName),
		http.StatusConflict,
		nil,
	)
}

func NewTimeOverlap(employeeName, jobName, conflictingJobName string) error {
	return NewDomainError(
		"TIME_OVERLAP",
		fmt.Sprintf("Time conflict for employee '%s': '%s' overlaps with existing assignment '%s'",
			employeeName, jobName, conflictingJobName),
		http.StatusConflict,
		map[string]any{"conflicting_job": conflictingJobName},
	)
}

func NewInvalidParameter(field, value string) error {
	return NewDomainError(
		"INVALID_PARAMETER",
		fmt.Sprintf("%s must be a valid number", field),
		http.StatusBadRequest,
		map[string]any{"field": field, "value": value},
	)
}

func NewInvalidRole(role string, validRoles []string) error {
	return NewDomainError(
		"INVALID_PARAMETER",
		fmt.Sprintf("Invalid role '%s'. Must be one of: %s", role, strings.Join(validRoles, ", ")),
		http.StatusBadRequest,
		map[string]any{"field": "role", "value": role},
	)
}

func NewInvalidDateTime(field, value string) error {
	return NewDomainError(
		"INVALID_DATETIME",
		fmt.Sprintf("Invalid %s format. Use ISO 8601 format (e.g., 2024-01-30T08:00:00)", field),
		http.StatusBadRequest,
		map[string]any{"field": field, "value": value},
	)
}

func NewStorageError(err error) error {
	return &DomainError{
		Code:       "STORAGE_ERROR",
		Message:    "storage failure",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

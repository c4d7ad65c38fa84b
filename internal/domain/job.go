package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// Job models a time-bounded unit of work employees are assigned to.
type Job struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

const (
	jobNameMinLen = 3
	jobNameMaxLen = 200

	// Duration bounds in hours.
	jobMinDurationHours = 0.5
	jobMaxDurationHours = 24
)

// NewJob validates the fields and constructs a Job with a generated id. All
// field violations are reported together in the returned error's details.
func NewJob(name string, startTime, endTime time.Time) (*Job, error) {
	details := validateJobFields(name, startTime, endTime)
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid job", details)
	}

	return &Job{
		ID:        NewJobID(),
		Name:      strings.TrimSpace(name),
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// UpdatedJob validates replacement fields for an existing job, keeping its id.
func UpdatedJob(id, name string, startTime, endTime time.Time) (*Job, error) {
	details := validateJobFields(name, startTime, endTime)
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid job", details)
	}

	return &Job{
		ID:        id,
		Name:      strings.TrimSpace(name),
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func validateJobFields(name string, startTime, endTime time.Time) map[string]any {
	details := map[string]any{}

	trimmed := strings.TrimSpace(name)
	nameLen := utf8.RuneCountInString(trimmed)
	switch {
	case trimmed == "":
		details["name"] = "job name cannot be empty or only whitespace"
	case nameLen < jobNameMinLen || nameLen > jobNameMaxLen:
		details["name"] = fmt.Sprintf("job name must be between %d and %d characters", jobNameMinLen, jobNameMaxLen)
	}

	if !endTime.After(startTime) {
		details["endTime"] = "end time must be after start time"
	} else {
		hours := endTime.Sub(startTime).Hours()
		if hours < jobMinDurationHours {
			details["endTime"] = "job duration must be at least 30 minutes"
		} else if hours > jobMaxDurationHours {
			details["endTime"] = "job duration cannot exceed 24 hours"
		}
	}

	return details
}

// DurationHours returns the job length in hours.
func (j *Job) DurationHours() float64 {
	return j.EndTime.Sub(j.StartTime).Hours()
}

// OverlapsWith reports whether two job time windows overlap. Windows are
// half-open: a job ending exactly when another starts does not overlap it.
func (j *Job) OverlapsWith(other *Job) bool {
	return Overlaps(j.StartTime, j.EndTime, other.StartTime, other.EndTime)
}

// Overlaps is the half-open interval overlap test on raw instants.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

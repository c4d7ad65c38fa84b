package dto

import (
	"time"

	"github.com/fieldops/crew-scheduler/internal/domain"
)

// CreateJobRequest payload. Times are ISO 8601 strings.
type CreateJobRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UpdateJobRequest payload.
type UpdateJobRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// JobResponse response.
type JobResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// JobDetailResponse adds the computed duration for single-job lookups.
type JobDetailResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:        j.ID,
		Name:      j.Name,
		StartTime: j.StartTime,
		EndTime:   j.EndTime,
	}
}

// NewJobDetailResponse maps a domain job including its duration.
func NewJobDetailResponse(j *domain.Job) JobDetailResponse {
	return JobDetailResponse{
		ID:            j.ID,
		Name:          j.Name,
		StartTime:     j.StartTime,
		EndTime:       j.EndTime,
		DurationHours: j.DurationHours(),
	}
}

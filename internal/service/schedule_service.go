package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
	"github.com/fieldops/crew-scheduler/internal/repository"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// ScheduleService provides the read-only enriched schedule view.
type ScheduleService struct {
	employees   repository.EmployeeRepository
	jobs        repository.JobRepository
	assignments repository.AssignmentRepository
	cache       Cache
	logger      *zap.Logger
}

// ScheduleDependencies bundles the service's collaborators.
type ScheduleDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	JobRepo        repository.JobRepository
	AssignmentRepo repository.AssignmentRepository
	Cache          Cache
	Logger         *zap.Logger
}

// NewScheduleService creates the service.
func NewScheduleService(deps ScheduleDependencies) *ScheduleService {
	return &ScheduleService{
		employees:   deps.EmployeeRepo,
		jobs:        deps.JobRepo,
		assignments: deps.AssignmentRepo,
		cache:       deps.Cache,
		logger:      deps.Logger,
	}
}

// EnrichedAssignment is an assignment joined with its employee and job
// details. A side whose referenced record no longer exists is nil rather than
// an error.
type EnrichedAssignment struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	JobID      string           `json:"jobId"`
	AssignedAt time.Time        `json:"assignedAt"`
	Notes      *string          `json:"notes,omitempty"`
	Employee   *domain.Employee `json:"employee"`
	Job        *domain.Job      `json:"job"`
}

// Enriched returns every assignment with employee and job details, newest
// assignment first.
func (s *ScheduleService) Enriched(ctx context.Context) ([]EnrichedAssignment, error) {
	var cached []EnrichedAssignment
	if s.cache != nil && s.cache.GetJSON(ctx, persistence.CacheKeySchedule, &cached) {
		return cached, nil
	}

	assignments, err := s.assignments.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	employeesByID := make(map[string]*domain.Employee, len(employees))
	for i := range employees {
		employeesByID[employees[i].ID] = &employees[i]
	}
	jobsByID := make(map[string]*domain.Job, len(jobs))
	for i := range jobs {
		jobsByID[jobs[i].ID] = &jobs[i]
	}

	enriched := make([]EnrichedAssignment, 0, len(assignments))
	for _, a := range assignments {
		enriched = append(enriched, EnrichedAssignment{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			JobID:      a.JobID,
			AssignedAt: a.AssignedAt,
			Notes:      a.Notes,
			Employee:   employeesByID[a.EmployeeID],
			Job:        jobsByID[a.JobID],
		})
	}

	sort.SliceStable(enriched, func(i, k int) bool {
		return enriched[i].AssignedAt.After(enriched[k].AssignedAt)
	})

	if s.cache != nil {
		s.cache.SetJSON(ctx, persistence.CacheKeySchedule, enriched)
	}
	return enriched, nil
}

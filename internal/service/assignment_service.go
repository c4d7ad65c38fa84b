package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
	"github.com/fieldops/crew-scheduler/internal/repository"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// AssignmentService orchestrates the validated create/delete assignment
// operations: fresh repository reads, conflict validation, persistence.
type AssignmentService struct {
	employees   repository.EmployeeRepository
	jobs        repository.JobRepository
	assignments repository.AssignmentRepository
	cache       Cache
	logger      *zap.Logger
	now         func() time.Time

	locks keyedMutex
}

// AssignmentDependencies bundles the orchestrator's collaborators.
type AssignmentDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	JobRepo        repository.JobRepository
	AssignmentRepo repository.AssignmentRepository
	Cache          Cache
	Logger         *zap.Logger
	Now            func() time.Time
}

// NewAssignmentService creates the service. Now defaults to time.Now.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &AssignmentService{
		employees:   deps.EmployeeRepo,
		jobs:        deps.JobRepo,
		assignments: deps.AssignmentRepo,
		cache:       deps.Cache,
		logger:      deps.Logger,
		now:         now,
	}
}

// Create validates and persists a new assignment. The whole read-validate-
// write sequence runs under a per-employee lock so two concurrent creates for
// the same employee cannot both pass validation against a stale snapshot.
// Independent employees proceed concurrently.
func (s *AssignmentService) Create(ctx context.Context, employeeID, jobID string, notes *string) (*domain.Assignment, error) {
	unlock := s.locks.acquire(employeeID)
	defer unlock()

	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	existing, err := s.assignments.GetByEmployeeID(ctx, employeeID)
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

	employee, job, err := ValidateAssignment(
		employeeID, jobID,
		func(id string) *domain.Employee { return employeesByID[id] },
		func(id string) *domain.Job { return jobsByID[id] },
		existing,
	)
	if err != nil {
		s.logger.Warn("assignment rejected",
			zap.String("employee_id", employeeID),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return nil, err
	}

	assignment, err := domain.NewAssignment(employeeID, jobID, notes, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, persistence.CacheKeySchedule)
	}

	s.logger.Info("created assignment",
		zap.String("assignment_id", assignment.ID),
		zap.String("employee", employee.Name),
		zap.String("job", job.Name),
	)
	return assignment, nil
}

// Delete removes an assignment by id. Removing an assignment can never create
// a conflict, so no re-validation happens here.
func (s *AssignmentService) Delete(ctx context.Context, assignmentID string) error {
	deleted, err := s.assignments.Delete(ctx, assignmentID)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if !deleted {
		return apperrors.NewAssignmentNotFound(assignmentID)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, persistence.CacheKeySchedule)
	}

	s.logger.Info("deleted assignment", zap.String("assignment_id", assignmentID))
	return nil
}

// GetByID looks up a single assignment.
func (s *AssignmentService) GetByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, apperrors.NewAssignmentNotFound(assignmentID)
		}
		return nil, apperrors.NewStorageError(err)
	}
	return assignment, nil
}

// keyedMutex hands out one mutex per key, created lazily.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) acquire(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

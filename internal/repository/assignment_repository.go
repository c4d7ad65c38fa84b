package repository

import (
	"context"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
)

// AssignmentRepository encapsulates assignment persistence.
type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Assignment, error)
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Assignment, error)
	GetByJobID(ctx context.Context, jobID string) ([]domain.Assignment, error)
	Exists(ctx context.Context, employeeID, jobID string) (bool, error)
	Create(ctx context.Context, assignment *domain.Assignment) error
	Update(ctx context.Context, assignment *domain.Assignment) error
	Delete(ctx context.Context, id string) (bool, error)
}

type assignmentRepository struct {
	store *persistence.Store
}

// NewAssignmentRepository instantiates the repository.
func NewAssignmentRepository(store *persistence.Store) AssignmentRepository {
	return &assignmentRepository{store: store}
}

func (r *assignmentRepository) GetAll(ctx context.Context) ([]domain.Assignment, error) {
	return readAll[domain.Assignment](r.store, persistence.TableSchedule)
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	assignments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ID == id {
			return &assignments[i], nil
		}
	}
	return nil, persistence.ErrNotFound
}

func (r *assignmentRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Assignment, error) {
	assignments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Assignment, 0)
	for _, a := range assignments {
		if a.EmployeeID == employeeID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *assignmentRepository) GetByJobID(ctx context.Context, jobID string) ([]domain.Assignment, error) {
	assignments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Assignment, 0)
	for _, a := range assignments {
		if a.JobID == jobID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *assignmentRepository) Exists(ctx context.Context, employeeID, jobID string) (bool, error) {
	assignments, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		if a.EmployeeID == employeeID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	return mutate(r.store, persistence.TableSchedule, func(assignments []domain.Assignment) ([]domain.Assignment, error) {
		return append(assignments, *assignment), nil
	})
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *domain.Assignment) error {
	return mutate(r.store, persistence.TableSchedule, func(assignments []domain.Assignment) ([]domain.Assignment, error) {
		for i := range assignments {
			if assignments[i].ID == assignment.ID {
				assignments[i] = *assignment
				return assignments, nil
			}
		}
		return nil, persistence.ErrNotFound
	})
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := mutate(r.store, persistence.TableSchedule, func(assignments []domain.Assignment) ([]domain.Assignment, error) {
		kept := assignments[:0]
		for _, a := range assignments {
			if a.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, a)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

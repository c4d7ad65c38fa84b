package repository

import (
	"context"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
)

// EmployeeRepository encapsulates employee persistence. Inputs are assumed to
// be validated at construction; no business rules are enforced here.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) (bool, error)
}

type employeeRepository struct {
	store *persistence.Store
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(store *persistence.Store) EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return readAll[domain.Employee](r.store, persistence.TableEmployees)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employees, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}
	return nil, persistence.ErrNotFound
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return mutate(r.store, persistence.TableEmployees, func(employees []domain.Employee) ([]domain.Employee, error) {
		return append(employees, *employee), nil
	})
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	return mutate(r.store, persistence.TableEmployees, func(employees []domain.Employee) ([]domain.Employee, error) {
		for i := range employees {
			if employees[i].ID == employee.ID {
				employees[i] = *employee
				return employees, nil
			}
		}
		return nil, persistence.ErrNotFound
	})
}

func (r *employeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := mutate(r.store, persistence.TableEmployees, func(employees []domain.Employee) ([]domain.Employee, error) {
		kept := employees[:0]
		for _, e := range employees {
			if e.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, e)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

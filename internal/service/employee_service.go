package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fieldops/crew-scheduler/internal/domain"
	"github.com/fieldops/crew-scheduler/internal/persistence"
	"github.com/fieldops/crew-scheduler/internal/repository"
	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

// EmployeeService handles employee operations.
type EmployeeService struct {
	employees repository.EmployeeRepository
	cache     Cache
	logger    *zap.Logger
}

// EmployeeDependencies bundles the service's collaborators.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Cache        Cache
	Logger       *zap.Logger
}

// NewEmployeeService creates the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees: deps.EmployeeRepo,
		cache:     deps.Cache,
		logger:    deps.Logger,
	}
}

// EmployeeFilter captures list query parameters.
type EmployeeFilter struct {
	Available *bool
	Role      *string
}

// Create validates and persists a new employee.
func (s *EmployeeService) Create(ctx context.Context, name string, role domain.EmployeeRole, availability bool) (*domain.Employee, error) {
	employee, err := domain.NewEmployee(name, role, availability)
	if err != nil {
		return nil, err
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	s.logger.Info("created employee",
		zap.String("employee_id", employee.ID),
		zap.String("role", string(employee.Role)),
	)
	return employee, nil
}

// List returns employees, optionally filtered by availability and role.
func (s *EmployeeService) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	if filter.Role != nil && !domain.EmployeeRole(*filter.Role).IsValid() {
		return nil, apperrors.NewInvalidRole(*filter.Role, roleNames())
	}

	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	filtered := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if filter.Available != nil && e.Availability != *filter.Available {
			continue
		}
		if filter.Role != nil && string(e.Role) != *filter.Role {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

// GetByID looks up a single employee.
func (s *EmployeeService) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, apperrors.NewEmployeeNotFound(employeeID)
		}
		return nil, apperrors.NewStorageError(err)
	}
	return employee, nil
}

// SetAvailability toggles whether an employee can take new assignments.
// Existing assignments are untouched.
func (s *EmployeeService) SetAvailability(ctx context.Context, employeeID string, available bool) (*domain.Employee, error) {
	employee, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if available {
		employee.MarkAvailable()
	} else {
		employee.MarkUnavailable()
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, apperrors.NewEmployeeNotFound(employeeID)
		}
		return nil, apperrors.NewStorageError(err)
	}

	// Enriched schedule embeds employee records, so its cache is stale now.
	if s.cache != nil {
		s.cache.Invalidate(ctx, persistence.CacheKeySchedule)
	}

	s.logger.Info("updated employee availability",
		zap.String("employee_id", employeeID),
		zap.Bool("available", available),
	)
	return employee, nil
}

func roleNames() []string {
	names := make([]string, 0, len(domain.ValidRoles))
	for _, r := range domain.ValidRoles {
		names = append(names, string(r))
	}
	return names
}

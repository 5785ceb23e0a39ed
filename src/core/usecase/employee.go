package usecase

import (
	"context"
	"log/slog"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports"
)

// EmployeeService orchestrates employee reads and writes.
// Writes are validated before they reach the repository.
type EmployeeService struct {
	repo      ports.EmployeeRepository
	validator ports.EmployeeValidator
	log       *slog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, validator ports.EmployeeValidator, log *slog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator, log: log}
}

// List returns every employee with its department resolved.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

// Get returns a domain not-found error when the id is unknown.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

// Create validates e and, when it passes, persists it under a new id.
// On violations nothing is written and a *domain.ValidationError is returned.
func (s *EmployeeService) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	if errs := s.validator.Validate(&e); errs != nil {
		return nil, domain.NewValidationError(errs)
	}

	created, err := s.repo.CreateEmployee(ctx, e)
	if err != nil {
		return nil, err
	}

	s.log.Info("employee created",
		"employee_id", created.ID,
		"department_id", created.DepartmentID,
	)
	return created, nil
}

// Update replaces the stored employee with e after running the same rules as Create.
func (s *EmployeeService) Update(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	if errs := s.validator.Validate(&e); errs != nil {
		return nil, domain.NewValidationError(errs)
	}

	updated, err := s.repo.UpdateEmployee(ctx, e)
	if err != nil {
		return nil, err
	}

	s.log.Info("employee updated",
		"employee_id", updated.ID,
		"department_id", updated.DepartmentID,
	)
	return updated, nil
}

// Delete removes the employee. Deleting an unknown id succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.log.Info("employee deleted", "employee_id", id)
	return nil
}

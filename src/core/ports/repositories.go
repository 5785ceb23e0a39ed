// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"employeedir/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// DepartmentRepository reads the department reference data.
type DepartmentRepository interface {
	Repository

	// ListDepartments returns every department in insertion order.
	// An empty result is not an error.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// EmployeeRepository is the persistence gateway for employees.
//
// Every employee returned carries its Department, resolved by join.
// Writes only touch the employees table: the Department attached to the
// input is treated as an existing reference and never inserted or changed.
type EmployeeRepository interface {
	Repository

	// ListEmployees returns all employees ordered by id.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// GetEmployee returns domain.ErrNotFound when no row has the id.
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)

	// CreateEmployee assigns a new id and persists the row. The input id is ignored.
	// A departmentID with no matching department yields domain.ErrReferentialIntegrity.
	CreateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error)

	// UpdateEmployee replaces the row matching e.ID in full.
	// It returns domain.ErrNotFound rather than inserting when the row is absent.
	UpdateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error)

	// DeleteEmployee removes the row if present; a missing row is not an error.
	DeleteEmployee(ctx context.Context, id int64) error
}

// DirectoryRepository is the composite store the application is wired with.
type DirectoryRepository interface {
	DepartmentRepository
	EmployeeRepository
}

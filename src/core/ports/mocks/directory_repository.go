// Package mocks provides testify mocks of the core ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports"
)

var _ ports.DirectoryRepository = (*DirectoryRepository)(nil)

// DirectoryRepository is a mock of ports.DirectoryRepository.
type DirectoryRepository struct {
	mock.Mock
}

func (m *DirectoryRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *DirectoryRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	departments, _ := args.Get(0).([]domain.Department)
	return departments, args.Error(1)
}

func (m *DirectoryRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]domain.Employee)
	return employees, args.Error(1)
}

func (m *DirectoryRepository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*domain.Employee)
	return employee, args.Error(1)
}

func (m *DirectoryRepository) CreateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, e)
	employee, _ := args.Get(0).(*domain.Employee)
	return employee, args.Error(1)
}

func (m *DirectoryRepository) UpdateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, e)
	employee, _ := args.Get(0).(*domain.Employee)
	return employee, args.Error(1)
}

func (m *DirectoryRepository) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package usecase

import (
	"context"
	"log/slog"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports"
)

// DepartmentService exposes the read-only department list.
type DepartmentService struct {
	repo ports.DepartmentRepository
	log  *slog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, log *slog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, log: log}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

package service

import (
	"context"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/repository"
	"golang.org/x/sync/errgroup"
)

// SummaryService собирает сводку по всем таблицам
type SummaryService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

type summaryService struct {
	store *repository.Store
}

// NewSummaryService создаёт новый экземпляр сервиса
func NewSummaryService(store *repository.Store) SummaryService {
	return &summaryService{store: store}
}

func (s *summaryService) Summary(ctx context.Context) (*domain.Summary, error) {
	var (
		departments []domain.Department
		employees   []domain.EmployeeRow
		roles       []domain.RoleRow
	)

	// Чтения независимы, порядок завершения не важен
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		departments, err = s.store.Departments.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = s.store.Employees.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		roles, err = s.store.Roles.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		TotalDepartments: len(departments),
		TotalEmployees:   len(employees),
		Departments:      make([]domain.DepartmentSummary, len(departments)),
	}

	index := make(map[int64]int, len(departments))
	for i, d := range departments {
		index[d.ID] = i
		summary.Departments[i] = domain.DepartmentSummary{ID: d.ID, Name: d.Name}
	}
	for _, r := range roles {
		if i, ok := index[r.DepartmentID]; ok {
			summary.Departments[i].Roles = append(summary.Departments[i].Roles, r.Title)
		}
	}
	for _, e := range employees {
		if i, ok := index[e.DepartmentID]; ok {
			summary.Departments[i].Employees++
		}
	}

	return summary, nil
}

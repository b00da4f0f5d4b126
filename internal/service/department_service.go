package service

import (
	"context"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
	"github.com/go-playground/validator/v10"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
	Budget(ctx context.Context, id int64) (float64, error)
}

type departmentService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(store *repository.Store) DepartmentService {
	return &departmentService{
		store:     store,
		validator: validator.New(),
	}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.store.Departments.List(ctx)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	dept := &domain.Department{Name: req.Name}
	if err := s.store.Departments.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Delete удаляет подразделение без проверки зависимых должностей
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.store.Departments.Delete(ctx, id)
}

// Budget возвращает сумму окладов сотрудников подразделения
func (s *departmentService) Budget(ctx context.Context, id int64) (float64, error) {
	// Проверяем существование подразделения
	if _, err := s.store.Departments.GetByID(ctx, id); err != nil {
		return 0, err
	}

	return s.store.Departments.Budget(ctx, id)
}

package service

import (
	"context"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
	"github.com/go-playground/validator/v10"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.EmployeeRow, error)
	ByManager(ctx context.Context, managerID int64) ([]domain.EmployeeRow, error)
	ByDepartment(ctx context.Context, departmentID int64) ([]domain.EmployeeRow, error)
	Managers(ctx context.Context) ([]domain.Employee, error)
	ManagerOptions(ctx context.Context) ([]domain.ManagerOption, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(store *repository.Store) EmployeeService {
	return &employeeService{
		store:     store,
		validator: validator.New(),
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.EmployeeRow, error) {
	return s.store.Employees.List(ctx)
}

func (s *employeeService) ByManager(ctx context.Context, managerID int64) ([]domain.EmployeeRow, error) {
	return s.store.Employees.ListByManager(ctx, managerID)
}

func (s *employeeService) ByDepartment(ctx context.Context, departmentID int64) ([]domain.EmployeeRow, error) {
	return s.store.Employees.ListByDepartment(ctx, departmentID)
}

func (s *employeeService) Managers(ctx context.Context) ([]domain.Employee, error) {
	return s.store.Employees.Managers(ctx)
}

func (s *employeeService) ManagerOptions(ctx context.Context) ([]domain.ManagerOption, error) {
	return s.store.Employees.ManagerOptions(ctx)
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	// Проверяем существование должности
	if _, err := s.store.Roles.GetByID(ctx, req.RoleID); err != nil {
		return nil, err
	}

	// Проверяем существование руководителя, если он выбран
	if req.ManagerID != nil {
		if _, err := s.store.Employees.GetByID(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	emp := &domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
	}
	if err := s.store.Employees.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// Update применяет только выбранные изменения. Возвращает false, если менять было нечего.
func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, err
	}

	changes := domain.EmployeeChanges{RoleID: req.RoleID, ManagerID: req.ManagerID}
	if changes.Empty() {
		return false, nil
	}

	if changes.RoleID != nil {
		if _, err := s.store.Roles.GetByID(ctx, *changes.RoleID); err != nil {
			return false, err
		}
	}
	if changes.ManagerID != nil {
		if _, err := s.store.Employees.GetByID(ctx, *changes.ManagerID); err != nil {
			return false, err
		}
	}

	if err := s.store.Employees.Update(ctx, id, changes); err != nil {
		return false, err
	}
	return true, nil
}

// Delete удаляет сотрудника, обнуляя ссылки на него у подчинённых
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.store.Employees.Delete(ctx, id)
}

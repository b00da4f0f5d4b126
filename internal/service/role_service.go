package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
	"github.com/go-playground/validator/v10"
)

// RoleService определяет интерфейс бизнес-логики для должностей
type RoleService interface {
	List(ctx context.Context) ([]domain.RoleRow, error)
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*domain.Role, error)
	Holders(ctx context.Context, roleID int64) ([]domain.EmployeeRow, error)
	Delete(ctx context.Context, roleID int64, plan *dto.DeleteRolePlan) error
}

type roleService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewRoleService создаёт новый экземпляр сервиса
func NewRoleService(store *repository.Store) RoleService {
	return &roleService{
		store:     store,
		validator: validator.New(),
	}
}

func (s *roleService) List(ctx context.Context) ([]domain.RoleRow, error) {
	return s.store.Roles.List(ctx)
}

func (s *roleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*domain.Role, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Salary = strings.TrimSpace(req.Salary)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	salary, err := strconv.ParseFloat(req.Salary, 64)
	if err != nil || salary < 0 {
		return nil, domain.ErrInvalidSalary
	}

	// Проверяем существование подразделения
	if _, err := s.store.Departments.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	role := &domain.Role{
		Title:        req.Title,
		Salary:       salary,
		DepartmentID: req.DepartmentID,
	}
	if err := s.store.Roles.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Holders возвращает сотрудников, занимающих должность
func (s *roleService) Holders(ctx context.Context, roleID int64) ([]domain.EmployeeRow, error) {
	return s.store.Employees.ListByRole(ctx, roleID)
}

// Delete удаляет должность, предварительно разрешая судьбу её сотрудников согласно плану.
// Всё выполняется в одной транзакции: при ошибке ни сотрудники, ни должность не меняются.
func (s *roleService) Delete(ctx context.Context, roleID int64, plan *dto.DeleteRolePlan) error {
	if err := s.validator.Struct(plan); err != nil {
		if plan.Mode == dto.DeleteRoleModeReassign && plan.Reassign == nil {
			return domain.ErrReassignTargetRequired
		}
		return domain.ErrInvalidDeleteMode
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Roles.GetByID(ctx, roleID); err != nil {
			return err
		}

		holders, err := tx.Employees.ListByRole(ctx, roleID)
		if err != nil {
			return err
		}

		switch plan.Mode {
		case dto.DeleteRoleModeNone:
			if len(holders) > 0 {
				return domain.ErrRoleHasEmployees
			}

		case dto.DeleteRoleModeReassign:
			for _, emp := range holders {
				targetID, ok := plan.Reassign[emp.ID]
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrReassignTargetRequired, emp.FullName())
				}
				if targetID == roleID {
					return domain.ErrCannotReassignToSelf
				}
				if _, err := tx.Roles.GetByID(ctx, targetID); err != nil {
					if errors.Is(err, domain.ErrRoleNotFound) {
						return domain.ErrReassignTargetNotFound
					}
					return err
				}
				if err := tx.Employees.Update(ctx, emp.ID, domain.EmployeeChanges{RoleID: &targetID}); err != nil {
					return err
				}
			}

		case dto.DeleteRoleModeDelete:
			for _, emp := range holders {
				if err := tx.Employees.Delete(ctx, emp.ID); err != nil {
					return err
				}
			}
		}

		return tx.Roles.Delete(ctx, roleID)
	})
}

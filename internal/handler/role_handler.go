package handler

import (
	"context"
	"fmt"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
)

// Варианты разрешения при удалении занятой должности
const (
	ResolutionModify = "Modify Employee Roles"
	ResolutionDelete = "Delete Employees"
	ResolutionCancel = "Cancel"
)

const noRolesMessage = "No roles found. Add a role first."

func (m *Menu) viewAllRoles(ctx context.Context) error {
	roles, err := m.roleService.List(ctx)
	if err != nil {
		return err
	}
	m.renderRoles(roles)
	return nil
}

func (m *Menu) addRole(ctx context.Context) error {
	departments, err := m.deptService.List(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		fmt.Fprintln(m.out, noDepartmentsMessage)
		return nil
	}

	title, err := m.prompt.Input(ctx, "Enter the title of the new role:")
	if err != nil {
		return err
	}
	salary, err := m.prompt.Input(ctx, "Enter the salary for the new role:")
	if err != nil {
		return err
	}

	options := make([]string, len(departments))
	for i, d := range departments {
		options[i] = d.Name
	}
	idx, err := m.prompt.Select(ctx, "Select the department for the new role:", options)
	if err != nil {
		return err
	}

	role, err := m.roleService.Create(ctx, &dto.CreateRoleRequest{
		Title:        title,
		Salary:       salary,
		DepartmentID: departments[idx].ID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Added new role: %s\n", role.Title)
	return nil
}

// deleteRole удаляет должность. Если у неё есть сотрудники, сначала показывает их
// и требует выбрать: переназначить каждого, удалить всех или отменить удаление.
func (m *Menu) deleteRole(ctx context.Context) error {
	roles, err := m.roleService.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		fmt.Fprintln(m.out, noRolesMessage)
		return nil
	}

	options := make([]string, len(roles))
	for i, r := range roles {
		options[i] = roleLabel(r)
	}
	idx, err := m.prompt.Select(ctx, "Select the role to remove:", options)
	if err != nil {
		return err
	}
	role := roles[idx]

	holders, err := m.roleService.Holders(ctx, role.ID)
	if err != nil {
		return err
	}

	plan := &dto.DeleteRolePlan{Mode: dto.DeleteRoleModeNone}
	if len(holders) > 0 {
		fmt.Fprintln(m.out, "The following employees are associated with this role:")
		m.renderEmployees(holders)

		resolution, err := m.prompt.Select(ctx, mainMenuTitle, []string{ResolutionModify, ResolutionDelete, ResolutionCancel})
		if err != nil {
			return err
		}

		switch resolution {
		case 0:
			reassign, err := m.chooseReplacementRoles(ctx, role, roles, holders)
			if err != nil || reassign == nil {
				return err
			}
			plan = &dto.DeleteRolePlan{Mode: dto.DeleteRoleModeReassign, Reassign: reassign}
		case 1:
			plan = &dto.DeleteRolePlan{Mode: dto.DeleteRoleModeDelete}
		default:
			fmt.Fprintln(m.out, "Role deletion cancelled.")
			return nil
		}
	}

	if err := m.roleService.Delete(ctx, role.ID, plan); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Role deleted successfully.")
	return nil
}

// chooseReplacementRoles спрашивает новую должность для каждого сотрудника.
// Удаляемая должность в списке не предлагается.
func (m *Menu) chooseReplacementRoles(
	ctx context.Context,
	deleted domain.RoleRow,
	roles []domain.RoleRow,
	holders []domain.EmployeeRow,
) (map[int64]int64, error) {
	candidates := make([]domain.RoleRow, 0, len(roles))
	for _, r := range roles {
		if r.ID != deleted.ID {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		fmt.Fprintln(m.out, "No other roles to move employees to. Role deletion cancelled.")
		return nil, nil
	}

	options := make([]string, len(candidates))
	for i, r := range candidates {
		options[i] = roleLabel(r)
	}

	reassign := make(map[int64]int64, len(holders))
	for _, emp := range holders {
		idx, err := m.prompt.Select(ctx, fmt.Sprintf("Select a new role for %s:", emp.FullName()), options)
		if err != nil {
			return nil, err
		}
		reassign[emp.ID] = candidates[idx].ID
	}
	return reassign, nil
}

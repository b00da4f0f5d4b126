package handler

import (
	"context"
	"fmt"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"golang.org/x/sync/errgroup"
)

const (
	unchangedLabel     = "Unchanged"
	noEmployeesMessage = "No employees found. Add an employee first."
	noManagersMessage  = "No employees currently manage anyone."
	employeeUpdated    = "Employee updated successfully."
	employeeNotUpdated = "No changes made to the employee."
)

func (m *Menu) viewAllEmployees(ctx context.Context) error {
	employees, err := m.empService.List(ctx)
	if err != nil {
		return err
	}
	m.renderEmployees(employees)
	return nil
}

func (m *Menu) viewEmployeesByManager(ctx context.Context) error {
	managers, err := m.empService.Managers(ctx)
	if err != nil {
		return err
	}
	if len(managers) == 0 {
		fmt.Fprintln(m.out, noManagersMessage)
		return nil
	}

	options := make([]string, len(managers))
	for i, mgr := range managers {
		options[i] = mgr.FullName()
	}
	idx, err := m.prompt.Select(ctx, "Select the manager to view employees:", options)
	if err != nil {
		return err
	}

	employees, err := m.empService.ByManager(ctx, managers[idx].ID)
	if err != nil {
		return err
	}
	m.renderReports(employees)
	return nil
}

func (m *Menu) addEmployee(ctx context.Context) error {
	var (
		managers []domain.ManagerOption
		roles    []domain.RoleRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		managers, err = m.empService.ManagerOptions(gctx)
		return err
	})
	g.Go(func() (err error) {
		roles, err = m.roleService.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if len(roles) == 0 {
		fmt.Fprintln(m.out, noRolesMessage)
		return nil
	}

	firstName, err := m.prompt.Input(ctx, "Enter the first name of the new employee:")
	if err != nil {
		return err
	}
	lastName, err := m.prompt.Input(ctx, "Enter the last name of the new employee:")
	if err != nil {
		return err
	}

	roleOptions := make([]string, len(roles))
	for i, r := range roles {
		roleOptions[i] = roleLabel(r)
	}
	roleIdx, err := m.prompt.Select(ctx, "Select the role for the new employee:", roleOptions)
	if err != nil {
		return err
	}

	managerOptions := make([]string, len(managers))
	for i, mgr := range managers {
		managerOptions[i] = mgr.Name
	}
	managerIdx, err := m.prompt.Select(ctx, "Select the manager for the new employee:", managerOptions)
	if err != nil {
		return err
	}

	emp, err := m.empService.Create(ctx, &dto.CreateEmployeeRequest{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roles[roleIdx].ID,
		ManagerID: managers[managerIdx].ID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Added new employee: %s\n", emp.FullName())
	return nil
}

// updateEmployeeRole меняет должность и/или руководителя; «Unchanged» оставляет поле как есть
func (m *Menu) updateEmployeeRole(ctx context.Context) error {
	var (
		employees []domain.EmployeeRow
		roles     []domain.RoleRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = m.empService.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		roles, err = m.roleService.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(m.out, noEmployeesMessage)
		return nil
	}

	options := make([]string, len(employees))
	for i, e := range employees {
		options[i] = e.FullName()
	}
	idx, err := m.prompt.Select(ctx, "Select the employee to update:", options)
	if err != nil {
		return err
	}
	target := employees[idx]

	var req dto.UpdateEmployeeRequest

	roleOptions := []string{unchangedLabel}
	for _, r := range roles {
		roleOptions = append(roleOptions, roleLabel(r))
	}
	roleIdx, err := m.prompt.Select(ctx, "Select the new role for the employee (or leave unchanged):", roleOptions)
	if err != nil {
		return err
	}
	if roleIdx > 0 {
		req.RoleID = &roles[roleIdx-1].ID
	}

	// Сотрудник не может быть руководителем самому себе
	candidates := make([]domain.EmployeeRow, 0, len(employees))
	managerOptions := []string{unchangedLabel}
	for _, e := range employees {
		if e.ID == target.ID {
			continue
		}
		candidates = append(candidates, e)
		managerOptions = append(managerOptions, e.FullName())
	}
	managerIdx, err := m.prompt.Select(ctx, "Select the new manager for the employee (or leave unchanged):", managerOptions)
	if err != nil {
		return err
	}
	if managerIdx > 0 {
		req.ManagerID = &candidates[managerIdx-1].ID
	}

	changed, err := m.empService.Update(ctx, target.ID, &req)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintln(m.out, employeeUpdated)
	} else {
		fmt.Fprintln(m.out, employeeNotUpdated)
	}
	return nil
}

func (m *Menu) deleteEmployee(ctx context.Context) error {
	employees, err := m.empService.List(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(m.out, noEmployeesMessage)
		return nil
	}

	options := make([]string, len(employees))
	for i, e := range employees {
		options[i] = e.FullName()
	}
	idx, err := m.prompt.Select(ctx, "Select the employee to remove:", options)
	if err != nil {
		return err
	}

	if err := m.empService.Delete(ctx, employees[idx].ID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Removed employee")
	return nil
}

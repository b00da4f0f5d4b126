package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/money"
)

const noDepartmentsMessage = "No departments found. Add a department first."

func (m *Menu) viewAllDepartments(ctx context.Context) error {
	departments, err := m.deptService.List(ctx)
	if err != nil {
		return err
	}
	m.renderDepartments(departments)
	return nil
}

func (m *Menu) viewEmployeesByDepartment(ctx context.Context) error {
	dept, err := m.selectDepartment(ctx, "Select the department to view employees:")
	if err != nil || dept == nil {
		return err
	}

	employees, err := m.empService.ByDepartment(ctx, dept.ID)
	if err != nil {
		return err
	}
	m.renderEmployees(employees)
	return nil
}

func (m *Menu) viewDepartmentBudget(ctx context.Context) error {
	dept, err := m.selectDepartment(ctx, "Select the department to view budget:")
	if err != nil || dept == nil {
		return err
	}

	budget, err := m.deptService.Budget(ctx, dept.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Total utilized budget for department: %s\n", money.USD(budget))
	return nil
}

func (m *Menu) viewSummary(ctx context.Context) error {
	summary, err := m.summaryService.Summary(ctx)
	if err != nil {
		return err
	}

	m.renderTable(
		[]string{"Total Departments", "Total Employees"},
		[][]string{{strconv.Itoa(summary.TotalDepartments), strconv.Itoa(summary.TotalEmployees)}},
	)

	rows := make([][]string, len(summary.Departments))
	for i, d := range summary.Departments {
		rows[i] = []string{d.Name, strconv.Itoa(d.Employees), strings.Join(d.Roles, ", ")}
	}
	m.renderTable([]string{"Department", "Employees", "Roles"}, rows)
	return nil
}

func (m *Menu) addDepartment(ctx context.Context) error {
	name, err := m.prompt.Input(ctx, "Enter the name of the new department:")
	if err != nil {
		return err
	}

	dept, err := m.deptService.Create(ctx, &dto.CreateDepartmentRequest{Name: name})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Added new department: %s\n", dept.Name)
	return nil
}

// deleteDepartment не проверяет, остались ли у подразделения должности
func (m *Menu) deleteDepartment(ctx context.Context) error {
	dept, err := m.selectDepartment(ctx, "Select the department to remove:")
	if err != nil || dept == nil {
		return err
	}

	if err := m.deptService.Delete(ctx, dept.ID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Removed department")
	return nil
}

// selectDepartment предлагает выбрать подразделение; возвращает nil, если выбирать не из чего
func (m *Menu) selectDepartment(ctx context.Context, title string) (*domain.Department, error) {
	departments, err := m.deptService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		fmt.Fprintln(m.out, noDepartmentsMessage)
		return nil, nil
	}

	options := make([]string, len(departments))
	for i, d := range departments {
		options[i] = d.Name
	}

	idx, err := m.prompt.Select(ctx, title, options)
	if err != nil {
		return nil, err
	}
	return &departments[idx], nil
}

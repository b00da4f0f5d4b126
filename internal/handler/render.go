package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/money"
	"github.com/go-playground/validator/v10"
)

const (
	noResultsMessage = "No results."
	noneLabel        = "None"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// renderTable выводит строки таблицей; для пустого набора печатает уведомление
func (m *Menu) renderTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(m.out, noResultsMessage)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(m.out, t.Render())
}

func (m *Menu) renderDepartments(departments []domain.Department) {
	rows := make([][]string, len(departments))
	for i, d := range departments {
		rows[i] = []string{formatID(d.ID), d.Name}
	}
	m.renderTable([]string{"ID", "Name"}, rows)
}

func (m *Menu) renderRoles(roles []domain.RoleRow) {
	rows := make([][]string, len(roles))
	for i, r := range roles {
		rows[i] = []string{formatID(r.ID), r.Title, r.DepartmentName, money.USD(r.Salary)}
	}
	m.renderTable([]string{"ID", "Title", "Department", "Salary"}, rows)
}

func (m *Menu) renderEmployees(employees []domain.EmployeeRow) {
	rows := make([][]string, len(employees))
	for i, e := range employees {
		manager := noneLabel
		if e.ManagerName != nil {
			manager = *e.ManagerName
		}
		rows[i] = []string{
			formatID(e.ID), e.FirstName, e.LastName, e.RoleTitle,
			e.DepartmentName, manager, money.USD(e.Salary),
		}
	}
	m.renderTable([]string{"ID", "First Name", "Last Name", "Role", "Department", "Manager", "Salary"}, rows)
}

// renderReports - подчинённые руководителя, без колонки руководителя
func (m *Menu) renderReports(employees []domain.EmployeeRow) {
	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = []string{formatID(e.ID), e.FirstName, e.LastName, e.RoleTitle, e.DepartmentName, money.USD(e.Salary)}
	}
	m.renderTable([]string{"ID", "First Name", "Last Name", "Role", "Department", "Salary"}, rows)
}

func roleLabel(r domain.RoleRow) string {
	return fmt.Sprintf("%s (%s) - %s", r.Title, r.DepartmentName, money.USD(r.Salary))
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

// reportError выводит понятное сообщение об ошибке действия
func (m *Menu) reportError(err error) {
	fmt.Fprintln(m.out, errorStyle.Render("Error: "+describeError(err)))
}

func describeError(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return "invalid input: " + validationErrs.Error()
	case errors.Is(err, domain.ErrRoleHasEmployees):
		return "role is still held by employees, reassign or delete them first"
	default:
		return err.Error()
	}
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/employee-tracker/internal/middleware"
	"github.com/employee-tracker/internal/prompt"
	"github.com/employee-tracker/internal/service"
)

// Подписи пунктов главного меню
const (
	ChoiceViewDepartments    = "View All Departments"
	ChoiceViewRoles          = "View All Roles"
	ChoiceViewEmployees      = "View All Employees"
	ChoiceViewByManager      = "View Employees by Manager"
	ChoiceViewByDepartment   = "View Employees by Department"
	ChoiceViewBudget         = "View Department Budget"
	ChoiceViewSummary        = "View Summary"
	ChoiceAddDepartment      = "Add Department"
	ChoiceAddRole            = "Add Role"
	ChoiceAddEmployee        = "Add Employee"
	ChoiceUpdateEmployeeRole = "Update Employee Role"
	ChoiceDeleteEmployee     = "Delete Employee"
	ChoiceDeleteRole         = "Delete Role"
	ChoiceDeleteDepartment   = "Delete Department"
	ChoiceExit               = "Exit"
)

const (
	mainMenuTitle    = "What would you like to do?"
	welcomeMessage   = "\n    Welcome to the Employee Management System!\n    -----------------------------------------\n"
	farewellMessage  = "Goodbye!"
	cancelledMessage = "Action cancelled."
)

type menuItem struct {
	name string
	// confirm - вопрос перед выполнением; пустая строка означает «без подтверждения»
	confirm string
	run     middleware.Action
}

// Menu - интерактивный цикл: показывает меню, выполняет выбранное действие и возвращается к меню
type Menu struct {
	deptService    service.DepartmentService
	roleService    service.RoleService
	empService     service.EmployeeService
	summaryService service.SummaryService
	prompt         prompt.Prompter
	out            io.Writer
	logger         *slog.Logger
	items          []menuItem
}

// NewMenu создаёт меню
func NewMenu(
	deptService service.DepartmentService,
	roleService service.RoleService,
	empService service.EmployeeService,
	summaryService service.SummaryService,
	p prompt.Prompter,
	out io.Writer,
	logger *slog.Logger,
) *Menu {
	m := &Menu{
		deptService:    deptService,
		roleService:    roleService,
		empService:     empService,
		summaryService: summaryService,
		prompt:         p,
		out:            out,
		logger:         logger,
	}
	m.setup()
	return m
}

// setup регистрирует действия меню в порядке отображения
func (m *Menu) setup() {
	m.items = []menuItem{
		{name: ChoiceViewDepartments, run: m.viewAllDepartments},
		{name: ChoiceViewRoles, run: m.viewAllRoles},
		{name: ChoiceViewEmployees, run: m.viewAllEmployees},
		{name: ChoiceViewByManager, run: m.viewEmployeesByManager},
		{name: ChoiceViewByDepartment, run: m.viewEmployeesByDepartment},
		{name: ChoiceViewBudget, run: m.viewDepartmentBudget},
		{name: ChoiceViewSummary, run: m.viewSummary},
		{name: ChoiceAddDepartment, confirm: "Are you sure you want to add a new department?", run: m.addDepartment},
		{name: ChoiceAddRole, confirm: "Are you sure you want to add a new role?", run: m.addRole},
		{name: ChoiceAddEmployee, confirm: "Are you sure you want to add a new employee?", run: m.addEmployee},
		{name: ChoiceUpdateEmployeeRole, run: m.updateEmployeeRole},
		{name: ChoiceDeleteEmployee, confirm: "Are you sure you want to delete an employee?", run: m.deleteEmployee},
		{name: ChoiceDeleteRole, run: m.deleteRole},
		{name: ChoiceDeleteDepartment, confirm: "Are you sure you want to delete a department?", run: m.deleteDepartment},
	}

	for i := range m.items {
		item := &m.items[i]
		item.run = middleware.Chain(item.name, m.confirmed(item.confirm, item.run),
			middleware.Recoverer(m.logger),
			middleware.Logger(m.logger),
		)
	}
}

func (m *Menu) choices() []string {
	choices := make([]string, 0, len(m.items)+1)
	for _, item := range m.items {
		choices = append(choices, item.name)
	}
	return append(choices, ChoiceExit)
}

// Run показывает меню, пока пользователь не выберет Exit или не прервёт ввод.
// Ошибки действий выводятся пользователю и не завершают цикл.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprint(m.out, welcomeMessage+"\n")

	choices := m.choices()
	for {
		idx, err := m.prompt.Select(ctx, mainMenuTitle, choices)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(m.out, farewellMessage)
				return nil
			}
			return err
		}

		if idx >= len(m.items) {
			fmt.Fprintln(m.out, farewellMessage)
			return nil
		}

		if err := m.items[idx].run(ctx); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(m.out, farewellMessage)
				return nil
			}
			m.reportError(err)
		}
	}
}

// confirmed запрашивает подтверждение перед действием; отказ возвращает к меню без изменений
func (m *Menu) confirmed(question string, next middleware.Action) middleware.Action {
	if question == "" {
		return next
	}
	return func(ctx context.Context) error {
		ok, err := m.prompt.Confirm(ctx, question)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.out, cancelledMessage)
			return nil
		}
		return next(ctx)
	}
}

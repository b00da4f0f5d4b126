package dto

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string `validate:"required,max=30"`
}

// CreateRoleRequest - запрос на создание должности; оклад приходит текстом из формы
type CreateRoleRequest struct {
	Title        string `validate:"required,max=30"`
	Salary       string `validate:"required,numeric"`
	DepartmentID int64  `validate:"required,min=1"`
}

// CreateEmployeeRequest - запрос на создание сотрудника.
// Имена длиннее 30 символов обрезаются, а не отклоняются.
type CreateEmployeeRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	RoleID    int64  `validate:"required,min=1"`
	ManagerID *int64 `validate:"omitempty,min=1"`
}

// UpdateEmployeeRequest - запрос на изменение сотрудника; nil означает «без изменений»
type UpdateEmployeeRequest struct {
	RoleID    *int64 `validate:"omitempty,min=1"`
	ManagerID *int64 `validate:"omitempty,min=1"`
}

// Режимы удаления должности
const (
	DeleteRoleModeNone     = "none"
	DeleteRoleModeReassign = "reassign"
	DeleteRoleModeDelete   = "delete"
)

// DeleteRolePlan - как поступить с сотрудниками удаляемой должности.
// Reassign сопоставляет ID сотрудника с ID новой должности.
type DeleteRolePlan struct {
	Mode     string          `validate:"required,oneof=none reassign delete"`
	Reassign map[int64]int64 `validate:"required_if=Mode reassign"`
}

package domain

// Department представляет подразделение организации
type Department struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(30);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "department"
}

// Role представляет должность с окладом внутри подразделения
type Role struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"type:varchar(30);not null"`
	Salary       float64 `json:"salary" gorm:"type:decimal(12,2);not null"`
	DepartmentID int64   `json:"department_id" gorm:"not null;index"`
}

// TableName задаёт имя таблицы для GORM
func (Role) TableName() string {
	return "role"
}

// Employee представляет сотрудника
type Employee struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"type:varchar(30);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(30);not null"`
	RoleID    int64  `json:"role_id" gorm:"not null;index"`
	ManagerID *int64 `json:"manager_id" gorm:"index"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employee"
}

// FullName возвращает имя и фамилию через пробел
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RoleRow - должность вместе с названием подразделения
type RoleRow struct {
	ID             int64   `gorm:"column:id"`
	Title          string  `gorm:"column:title"`
	Salary         float64 `gorm:"column:salary"`
	DepartmentID   int64   `gorm:"column:department_id"`
	DepartmentName string  `gorm:"column:department_name"`
}

// EmployeeRow - денормализованная строка сотрудника: должность, подразделение и руководитель
type EmployeeRow struct {
	ID             int64   `gorm:"column:id"`
	FirstName      string  `gorm:"column:first_name"`
	LastName       string  `gorm:"column:last_name"`
	RoleID         int64   `gorm:"column:role_id"`
	RoleTitle      string  `gorm:"column:role_title"`
	Salary         float64 `gorm:"column:salary"`
	DepartmentID   int64   `gorm:"column:department_id"`
	DepartmentName string  `gorm:"column:department_name"`
	ManagerID      *int64  `gorm:"column:manager_id"`
	ManagerName    *string `gorm:"column:manager_name"`
}

// FullName возвращает имя и фамилию через пробел
func (e EmployeeRow) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ManagerOption - вариант выбора руководителя; ID == nil означает «без руководителя»
type ManagerOption struct {
	ID   *int64 `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

// NoManagerLabel - подпись синтетического варианта без руководителя
const NoManagerLabel = "No Manager"

// EmployeeChanges - набор изменяемых полей сотрудника; nil означает «без изменений»
type EmployeeChanges struct {
	RoleID    *int64
	ManagerID *int64
}

// Empty сообщает, что изменений нет
func (c EmployeeChanges) Empty() bool {
	return c.RoleID == nil && c.ManagerID == nil
}

// Summary - сводка по базе для экрана обзора
type Summary struct {
	TotalDepartments int
	TotalEmployees   int
	Departments      []DepartmentSummary
}

// DepartmentSummary - численность и должности одного подразделения
type DepartmentSummary struct {
	ID        int64
	Name      string
	Employees int
	Roles     []string
}

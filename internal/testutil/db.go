package testutil

import (
	"testing"

	"github.com/employee-tracker/internal/config"
	"github.com/employee-tracker/internal/database"
	"github.com/employee-tracker/internal/domain"
	"gorm.io/gorm"
)

// NewDB создаёт in-memory базу SQLite со схемой из миграций
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(sqlDB, config.DriverSQLite); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// MustDepartment добавляет подразделение напрямую, минуя сервисы
func MustDepartment(t *testing.T, db *gorm.DB, name string) *domain.Department {
	t.Helper()
	dept := &domain.Department{Name: name}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("failed to create department %q: %v", name, err)
	}
	return dept
}

// MustRole добавляет должность напрямую
func MustRole(t *testing.T, db *gorm.DB, title string, salary float64, departmentID int64) *domain.Role {
	t.Helper()
	role := &domain.Role{Title: title, Salary: salary, DepartmentID: departmentID}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to create role %q: %v", title, err)
	}
	return role
}

// MustEmployee добавляет сотрудника напрямую; managerID может быть nil
func MustEmployee(t *testing.T, db *gorm.DB, first, last string, roleID int64, managerID *int64) *domain.Employee {
	t.Helper()
	emp := &domain.Employee{FirstName: first, LastName: last, RoleID: roleID, ManagerID: managerID}
	if err := db.Create(emp).Error; err != nil {
		t.Fatalf("failed to create employee %s %s: %v", first, last, err)
	}
	return emp
}

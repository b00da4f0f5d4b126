package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store объединяет репозитории, работающие через одно соединение или одну транзакцию
type Store struct {
	db *gorm.DB

	Departments DepartmentRepository
	Roles       RoleRepository
	Employees   EmployeeRepository
}

// NewStore создаёт набор репозиториев поверх пула соединений
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Departments: NewDepartmentRepository(db),
		Roles:       NewRoleRepository(db),
		Employees:   NewEmployeeRepository(db),
	}
}

// Transaction выполняет fn с репозиториями, привязанными к одной транзакции.
// Возврат ошибки из fn откатывает все изменения.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/employee-tracker/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	Budget(ctx context.Context, id int64) (float64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).
		Raw("SELECT id, name FROM department ORDER BY id").
		Scan(&departments).Error
	return departments, err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

// Delete не проверяет зависимые должности: за целостность отвечает схема БД
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec("DELETE FROM department WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// Budget суммирует оклады всех сотрудников подразделения
func (r *departmentRepository) Budget(ctx context.Context, id int64) (float64, error) {
	query := `
		SELECT SUM(r.salary) AS total_budget
		FROM employee e
		JOIN role r ON e.role_id = r.id
		WHERE r.department_id = ?
	`

	var total sql.NullFloat64
	if err := r.db.WithContext(ctx).Raw(query, id).Row().Scan(&total); err != nil {
		return 0, err
	}
	return total.Float64, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/employee-tracker/internal/domain"
	"gorm.io/gorm"
)

// RoleRepository определяет интерфейс для работы с должностями
type RoleRepository interface {
	List(ctx context.Context) ([]domain.RoleRow, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository создаёт новый экземпляр репозитория
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context) ([]domain.RoleRow, error) {
	query := `
		SELECT r.id, r.title, r.salary, r.department_id, d.name AS department_name
		FROM role r
		JOIN department d ON r.department_id = d.id
		ORDER BY r.id
	`

	var roles []domain.RoleRow
	err := r.db.WithContext(ctx).Raw(query).Scan(&roles).Error
	return roles, err
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec("DELETE FROM role WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

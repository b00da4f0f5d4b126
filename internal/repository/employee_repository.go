package repository

import (
	"context"
	"errors"

	"github.com/employee-tracker/internal/domain"
	"gorm.io/gorm"
)

// MaxNameLength - предельная длина имени и фамилии при вставке
const MaxNameLength = 30

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.EmployeeRow, error)
	ListByManager(ctx context.Context, managerID int64) ([]domain.EmployeeRow, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]domain.EmployeeRow, error)
	ListByRole(ctx context.Context, roleID int64) ([]domain.EmployeeRow, error)
	Managers(ctx context.Context) ([]domain.Employee, error)
	ManagerOptions(ctx context.Context) ([]domain.ManagerOption, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, id int64, changes domain.EmployeeChanges) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// employeeSelect соединяет сотрудника с должностью, подразделением и (необязательно) руководителем
const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.role_id, r.title AS role_title, r.salary,
		r.department_id, d.name AS department_name, e.manager_id,
		CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END AS manager_name
	FROM employee e
	JOIN role r ON e.role_id = r.id
	JOIN department d ON r.department_id = d.id
	LEFT JOIN employee m ON e.manager_id = m.id
`

func (r *employeeRepository) list(ctx context.Context, where string, args ...any) ([]domain.EmployeeRow, error) {
	query := employeeSelect + where + " ORDER BY e.id"

	var employees []domain.EmployeeRow
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&employees).Error
	return employees, err
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.EmployeeRow, error) {
	return r.list(ctx, "")
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID int64) ([]domain.EmployeeRow, error) {
	return r.list(ctx, "WHERE e.manager_id = ?", managerID)
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.EmployeeRow, error) {
	return r.list(ctx, "WHERE d.id = ?", departmentID)
}

func (r *employeeRepository) ListByRole(ctx context.Context, roleID int64) ([]domain.EmployeeRow, error) {
	return r.list(ctx, "WHERE e.role_id = ?", roleID)
}

// Managers возвращает сотрудников, у которых есть хотя бы один подчинённый
func (r *employeeRepository) Managers(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT DISTINCT e.id, e.first_name, e.last_name, e.role_id, e.manager_id
		FROM employee e
		JOIN employee m ON e.id = m.manager_id
		ORDER BY e.id
	`

	var managers []domain.Employee
	err := r.db.WithContext(ctx).Raw(query).Scan(&managers).Error
	return managers, err
}

// ManagerOptions возвращает всех сотрудников как варианты руководителя,
// первым идёт синтетический вариант «No Manager» с пустым ID
func (r *employeeRepository) ManagerOptions(ctx context.Context) ([]domain.ManagerOption, error) {
	query := `
		SELECT id, first_name || ' ' || last_name AS name
		FROM employee
		ORDER BY id
	`

	var options []domain.ManagerOption
	if err := r.db.WithContext(ctx).Raw(query).Scan(&options).Error; err != nil {
		return nil, err
	}

	return append([]domain.ManagerOption{{ID: nil, Name: domain.NoManagerLabel}}, options...), nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// Create обрезает имя и фамилию до MaxNameLength символов и заполняет emp.ID
func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	emp.FirstName = truncate(emp.FirstName, MaxNameLength)
	emp.LastName = truncate(emp.LastName, MaxNameLength)
	return r.db.WithContext(ctx).Create(emp).Error
}

// Update меняет только переданные поля
func (r *employeeRepository) Update(ctx context.Context, id int64, changes domain.EmployeeChanges) error {
	updates := make(map[string]any, 2)
	if changes.RoleID != nil {
		updates["role_id"] = *changes.RoleID
	}
	if changes.ManagerID != nil {
		updates["manager_id"] = *changes.ManagerID
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete сначала обнуляет ссылки подчинённых на удаляемого сотрудника, затем удаляет его.
// Оба запроса выполняются в одной транзакции.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE employee SET manager_id = NULL WHERE manager_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Exec("DELETE FROM employee WHERE id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}
		return nil
	})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/repository"
	"github.com/employee-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDepartmentRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	dept := &domain.Department{Name: "Engineering"}
	require.NoError(t, store.Departments.Create(ctx, dept))
	assert.NotZero(t, dept.ID)

	departments, err := store.Departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "Engineering", departments[0].Name)
}

func TestDepartmentRepository_DeleteNotFound(t *testing.T) {
	store := repository.NewStore(testutil.NewDB(t))

	err := store.Departments.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentRepository_Budget(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	empty := testutil.MustDepartment(t, db, "Legal")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	lead := testutil.MustRole(t, db, "Lead", 75000, eng.ID)
	testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, nil)
	testutil.MustEmployee(t, db, "Grace", "Hopper", lead.ID, nil)

	budget, err := store.Departments.Budget(ctx, eng.ID)
	require.NoError(t, err)
	assert.InDelta(t, 125000.0, budget, 0.001)

	budget, err = store.Departments.Budget(ctx, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, budget)
}

func TestRoleRepository_ListJoinsDepartment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	sales := testutil.MustDepartment(t, db, "Sales")
	testutil.MustRole(t, db, "Account Manager", 62000.5, sales.ID)

	roles, err := store.Roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Account Manager", roles[0].Title)
	assert.Equal(t, "Sales", roles[0].DepartmentName)
	assert.InDelta(t, 62000.5, roles[0].Salary, 0.001)

	_, err = store.Roles.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestEmployeeRepository_ListRendersManagerName(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	boss := testutil.MustEmployee(t, db, "Grace", "Hopper", dev.ID, nil)
	testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, &boss.ID)

	employees, err := store.Employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Nil(t, employees[0].ManagerName)
	assert.Nil(t, employees[0].ManagerID)
	require.NotNil(t, employees[1].ManagerName)
	assert.Equal(t, "Grace Hopper", *employees[1].ManagerName)
	assert.Equal(t, "Developer", employees[1].RoleTitle)
	assert.Equal(t, "Engineering", employees[1].DepartmentName)
	assert.InDelta(t, 50000.0, employees[1].Salary, 0.001)
}

func TestEmployeeRepository_Filters(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	ops := testutil.MustDepartment(t, db, "Operations")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	sre := testutil.MustRole(t, db, "SRE", 70000, ops.ID)
	boss := testutil.MustEmployee(t, db, "Grace", "Hopper", dev.ID, nil)
	testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, &boss.ID)
	testutil.MustEmployee(t, db, "Linus", "Torvalds", sre.ID, &boss.ID)
	testutil.MustEmployee(t, db, "Ken", "Thompson", sre.ID, nil)

	reports, err := store.Employees.ListByManager(ctx, boss.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	byDept, err := store.Employees.ListByDepartment(ctx, ops.ID)
	require.NoError(t, err)
	require.Len(t, byDept, 2)
	assert.Equal(t, "Linus", byDept[0].FirstName)

	byRole, err := store.Employees.ListByRole(ctx, dev.ID)
	require.NoError(t, err)
	assert.Len(t, byRole, 2)

	managers, err := store.Employees.Managers(ctx)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, boss.ID, managers[0].ID)
}

func TestEmployeeRepository_ManagerOptionsPrependsNoManager(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	options, err := store.Employees.ManagerOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Nil(t, options[0].ID)
	assert.Equal(t, domain.NoManagerLabel, options[0].Name)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	ada := testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, nil)

	options, err = store.Employees.ManagerOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)
	require.NotNil(t, options[1].ID)
	assert.Equal(t, ada.ID, *options[1].ID)
	assert.Equal(t, "Ada Lovelace", options[1].Name)
}

func TestEmployeeRepository_CreateTruncatesNames(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)

	emp := &domain.Employee{
		FirstName: strings.Repeat("a", 40),
		LastName:  strings.Repeat("b", 35),
		RoleID:    dev.ID,
	}
	require.NoError(t, store.Employees.Create(ctx, emp))

	stored, err := store.Employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", repository.MaxNameLength), stored.FirstName)
	assert.Equal(t, strings.Repeat("b", repository.MaxNameLength), stored.LastName)
}

func TestEmployeeRepository_UpdateOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	lead := testutil.MustRole(t, db, "Lead", 75000, eng.ID)
	boss := testutil.MustEmployee(t, db, "Grace", "Hopper", lead.ID, nil)
	ada := testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, &boss.ID)

	require.NoError(t, store.Employees.Update(ctx, ada.ID, domain.EmployeeChanges{RoleID: ptr(lead.ID)}))

	stored, err := store.Employees.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, stored.RoleID)
	require.NotNil(t, stored.ManagerID)
	assert.Equal(t, boss.ID, *stored.ManagerID)

	err = store.Employees.Update(ctx, 999, domain.EmployeeChanges{RoleID: ptr(lead.ID)})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DeleteNullsReports(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	boss := testutil.MustEmployee(t, db, "Grace", "Hopper", dev.ID, nil)
	ada := testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, &boss.ID)

	require.NoError(t, store.Employees.Delete(ctx, boss.ID))

	stored, err := store.Employees.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ManagerID)

	_, err = store.Employees.GetByID(ctx, boss.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	employees, err := store.Employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, ada.ID, employees[0].ID)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)

	eng := testutil.MustDepartment(t, db, "Engineering")
	dev := testutil.MustRole(t, db, "Developer", 50000, eng.ID)
	ada := testutil.MustEmployee(t, db, "Ada", "Lovelace", dev.ID, nil)

	err := store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Employees.Delete(ctx, ada.ID); err != nil {
			return err
		}
		return tx.Roles.Delete(ctx, 999)
	})
	require.ErrorIs(t, err, domain.ErrRoleNotFound)

	_, err = store.Employees.GetByID(ctx, ada.ID)
	assert.NoError(t, err)
}

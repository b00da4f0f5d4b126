package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrRoleNotFound           = errors.New("role not found")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrRoleHasEmployees       = errors.New("role is still held by employees")
	ErrInvalidDeleteMode      = errors.New("invalid delete mode")
	ErrReassignTargetRequired = errors.New("every employee needs a new role when mode is reassign")
	ErrReassignTargetNotFound = errors.New("target role for reassignment not found")
	ErrCannotReassignToSelf   = errors.New("cannot reassign employees to the role being deleted")
	ErrInvalidSalary          = errors.New("salary must be a non-negative number")
)

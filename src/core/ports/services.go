package ports

import "employeedir/src/core/domain"

// EmployeeValidator checks a candidate employee before it is written.
// It returns nil when the employee is valid.
type EmployeeValidator interface {
	Validate(e *domain.Employee) domain.FieldErrors
}

package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	UpdateCompensation(ctx context.Context, id string, template CompensationTemplate) error
	UpdateAccess(ctx context.Context, id string, role Role, permissions []string) error
}

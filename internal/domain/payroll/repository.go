package payroll

import "context"

// SalarySlipRepository - interface for the salary_slips table
type SalarySlipRepository interface {
	// Create inserts a new snapshot. Regenerating a period never updates an
	// existing row.
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id string) (SalarySlip, error)
	// GetLatestByEmployeePeriod returns the most recently generated snapshot
	// for the (employee, period) pair.
	GetLatestByEmployeePeriod(ctx context.Context, employeeID, periodKey string) (SalarySlip, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]SalarySlip, error)
}

package payroll

import "errors"

var (
	ErrSalarySlipNotFound = errors.New("Salary slip not found")
)

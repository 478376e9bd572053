package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// AttendanceSummary captures the day counts a slip was computed from.
type AttendanceSummary struct {
	WorkingDays   int     `json:"working_days"`
	PaidDays      float64 `json:"paid_days"`
	LossOfPayDays float64 `json:"loss_of_pay_days"`
}

// Earnings is the per-line earnings breakdown. Every line is rounded to whole
// currency units independently; Gross always equals the sum of the lines.
type Earnings struct {
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	Medical          decimal.Decimal `json:"medical"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	OtherAllowance   decimal.Decimal `json:"other_allowance"`
	Gross            decimal.Decimal `json:"gross"`
}

// Deductions is the per-line statutory deductions breakdown.
type Deductions struct {
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	Total           decimal.Decimal `json:"total"`
}

// EmployeeProfile is the frozen copy of profile fields in effect when the slip
// was generated. The live employee record may change afterwards; the slip must
// keep what it was computed from, for audit.
type EmployeeProfile struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`

	Template employee.CompensationTemplate `json:"template"`
}

// SalarySlip is an immutable snapshot keyed by (employee id, period key).
// Recomputation for the same period inserts a new snapshot; existing rows are
// never patched.
type SalarySlip struct {
	ID         string
	EmployeeID string

	PeriodKey   string
	PeriodYear  int
	PeriodMonth time.Month
	PeriodLabel string

	CompanyName string
	Currency    string

	Profile    EmployeeProfile
	Attendance AttendanceSummary
	Earnings   Earnings
	Deductions Deductions
	NetPay     decimal.Decimal

	GeneratedAt time.Time
}

func (p EmployeeProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *EmployeeProfile) Scan(value interface{}) error {
	return scanJSON(value, p)
}

func (e Earnings) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *Earnings) Scan(value interface{}) error {
	return scanJSON(value, e)
}

func (d Deductions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Deductions) Scan(value interface{}) error {
	return scanJSON(value, d)
}

func (a AttendanceSummary) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AttendanceSummary) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONB column: invalid type")
	}
	return json.Unmarshal(bytes, dest)
}

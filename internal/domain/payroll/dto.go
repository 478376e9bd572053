package payroll

import (
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// GenerateSlipRequest asks for a slip for one employee and period.
type GenerateSlipRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"` // 1-12
}

func (r GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalarySlipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PeriodKey   string `json:"period_key"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`
	PeriodLabel string `json:"period_label"`
	CompanyName string `json:"company_name"`
	Currency    string `json:"currency"`

	Profile    EmployeeProfile   `json:"employee_profile"`
	Attendance AttendanceSummary `json:"attendance_summary"`
	Earnings   Earnings          `json:"earnings"`
	Deductions Deductions        `json:"deductions"`
	NetPay     decimal.Decimal   `json:"net_pay"`

	GeneratedAt time.Time `json:"generated_at"`
}

func (s SalarySlip) ToResponse() SalarySlipResponse {
	return SalarySlipResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		PeriodKey:   s.PeriodKey,
		PeriodYear:  s.PeriodYear,
		PeriodMonth: int(s.PeriodMonth),
		PeriodLabel: s.PeriodLabel,
		CompanyName: s.CompanyName,
		Currency:    s.Currency,
		Profile:     s.Profile,
		Attendance:  s.Attendance,
		Earnings:    s.Earnings,
		Deductions:  s.Deductions,
		NetPay:      s.NetPay,
		GeneratedAt: s.GeneratedAt,
	}
}

package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/holiday"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/calendar"
)

func assertAmount(t *testing.T, expected int64, actual decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.NewFromInt(expected)),
		"%s: expected %d, got %s", label, expected, actual.String())
}

// fullMonthLeave returns an approved leave request covering the whole period,
// crediting every working day.
func fullMonthLeave(employeeID string, year int, month time.Month, dayType leave.DayType) []leave.LeaveRequest {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return []leave.LeaveRequest{{
		EmployeeID: employeeID,
		Type:       leave.TypePaid,
		DayType:    dayType,
		Status:     leave.StatusApproved,
		FromDate:   first,
		ToDate:     last,
	}}
}

func baseInput(tpl employee.CompensationTemplate, leaves []leave.LeaveRequest) ComputeInput {
	return ComputeInput{
		Employee: employee.Employee{
			ID:           "emp-1",
			Name:         "Asha Verma",
			EmployeeCode: "EMP-001",
			Department:   "Engineering",
			Designation:  "Developer",
			Compensation: tpl,
		},
		Year:        2026,
		Month:       time.March,
		Leaves:      leaves,
		CompanyName: "Ingenious HR Portal Pvt. Ltd.",
		GeneratedAt: time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeSalarySlip_FullAttendanceDefaults(t *testing.T) {
	tpl := employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))

	assertAmount(t, 20000, slip.Earnings.Basic, "basic")
	assertAmount(t, 10000, slip.Earnings.HRA, "hra")
	assertAmount(t, 5000, slip.Earnings.Conveyance, "conveyance")
	assertAmount(t, 4000, slip.Earnings.Medical, "medical")
	assertAmount(t, 0, slip.Earnings.SpecialAllowance, "special allowance")
	assertAmount(t, 11000, slip.Earnings.OtherAllowance, "other allowance")
	assertAmount(t, 50000, slip.Earnings.Gross, "gross")

	assertAmount(t, 0, slip.Deductions.PF, "pf")
	assertAmount(t, 0, slip.Deductions.ESI, "esi")
	assertAmount(t, 200, slip.Deductions.ProfessionalTax, "professional tax")
	assertAmount(t, 200, slip.Deductions.Total, "total deductions")
	assertAmount(t, 49800, slip.NetPay, "net pay")
}

func TestComputeSalarySlip_HalfAttendanceProration(t *testing.T) {
	tpl := employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeHalf)))

	assertAmount(t, 10000, slip.Earnings.Basic, "basic")
	assertAmount(t, 5000, slip.Earnings.HRA, "hra")
	assertAmount(t, 2500, slip.Earnings.Conveyance, "conveyance")
	assertAmount(t, 2000, slip.Earnings.Medical, "medical")
	assertAmount(t, 5500, slip.Earnings.OtherAllowance, "other allowance")
	assertAmount(t, 25000, slip.Earnings.Gross, "gross")

	assertAmount(t, 200, slip.Deductions.Total, "total deductions")
	assertAmount(t, 24800, slip.NetPay, "net pay")
}

func TestComputeSalarySlip_AttendanceSummary(t *testing.T) {
	tpl := employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}

	full := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))
	// March 2026 has 22 weekdays.
	assert.Equal(t, 22, full.Attendance.WorkingDays)
	assert.Equal(t, 22.0, full.Attendance.PaidDays)
	assert.Equal(t, 0.0, full.Attendance.LossOfPayDays)

	half := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeHalf)))
	assert.Equal(t, 11.0, half.Attendance.PaidDays)
	assert.Equal(t, 11.0, half.Attendance.LossOfPayDays)
}

func TestComputeSalarySlip_GrossAlwaysMatchesTarget(t *testing.T) {
	// Configured allowances that round below target must be topped up through
	// the other-allowance line.
	tpl := employee.CompensationTemplate{
		CTCAnnual:       decimal.NewFromInt(500000),
		ConveyanceFixed: decimal.NewFromInt(1600),
		MedicalFixed:    decimal.NewFromInt(1250),
	}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))

	target := decimal.NewFromInt(500000).Div(decimal.NewFromInt(12)).Round(0)
	assert.True(t, slip.Earnings.Gross.Equal(target),
		"gross %s must equal target %s", slip.Earnings.Gross, target)

	sum := slip.Earnings.Basic.
		Add(slip.Earnings.HRA).
		Add(slip.Earnings.Conveyance).
		Add(slip.Earnings.Medical).
		Add(slip.Earnings.SpecialAllowance).
		Add(slip.Earnings.OtherAllowance)
	assert.True(t, slip.Earnings.Gross.Equal(sum), "gross must equal the sum of the lines")
}

func TestComputeSalarySlip_MissingCTCFallsBack(t *testing.T) {
	slip := ComputeSalarySlip(baseInput(employee.CompensationTemplate{}, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))

	assertAmount(t, 6000, slip.Earnings.Gross, "gross")
	assertAmount(t, 2400, slip.Earnings.Basic, "basic")
	assertAmount(t, 1200, slip.Earnings.HRA, "hra")
	assertAmount(t, 600, slip.Earnings.Conveyance, "conveyance")
	assertAmount(t, 480, slip.Earnings.Medical, "medical")
}

func TestComputeSalarySlip_PFGatedOnRegistration(t *testing.T) {
	tpl := employee.CompensationTemplate{
		CTCAnnual: decimal.NewFromInt(600000),
		PFNumber:  "PF/123",
	}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))

	// 12% of basic 20000.
	assertAmount(t, 2400, slip.Deductions.PF, "pf")
	assertAmount(t, 47400, slip.NetPay, "net pay")
}

func TestComputeSalarySlip_ESICeiling(t *testing.T) {
	// Above the ceiling: registered but no ESI deducted.
	over := employee.CompensationTemplate{
		CTCAnnual: decimal.NewFromInt(600000),
		ESINumber: "ESI/9",
	}
	slip := ComputeSalarySlip(baseInput(over, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))
	assertAmount(t, 0, slip.Deductions.ESI, "esi above ceiling")

	// Under the ceiling: 0.75% of gross 6000 rounds to 45.
	under := employee.CompensationTemplate{ESINumber: "ESI/9"}
	slip = ComputeSalarySlip(baseInput(under, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))
	assertAmount(t, 45, slip.Deductions.ESI, "esi under ceiling")
}

func TestComputeSalarySlip_ZeroAttendance(t *testing.T) {
	tpl := employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}
	slip := ComputeSalarySlip(baseInput(tpl, nil))

	assertAmount(t, 0, slip.Earnings.Gross, "gross")
	assertAmount(t, 0, slip.Deductions.ProfessionalTax, "professional tax on zero gross")
	assertAmount(t, 0, slip.NetPay, "net pay")
	assert.Equal(t, 22.0, slip.Attendance.LossOfPayDays)
}

func TestComputeSalarySlip_ZeroWorkingDays(t *testing.T) {
	// Every weekday declared a holiday leaves nothing to prorate against.
	var holidays []holiday.Holiday
	for _, day := range calendar.DaysInPeriod(2026, time.March) {
		holidays = append(holidays, holiday.Holiday{Date: day, Name: "Shutdown", Type: "official"})
	}

	in := baseInput(employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}, nil)
	in.Holidays = holidays
	slip := ComputeSalarySlip(in)

	assert.Equal(t, 0, slip.Attendance.WorkingDays)
	assertAmount(t, 0, slip.Earnings.Gross, "gross")
	assertAmount(t, 0, slip.NetPay, "net pay")
}

func TestComputeSalarySlip_HolidaysReduceWorkingDays(t *testing.T) {
	holidays := []holiday.Holiday{
		{Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), Name: "Festival"},
		// Holiday from another period must not leak into this month.
		{Date: time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC), Name: "Other Month"},
	}

	in := baseInput(employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)},
		fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull))
	in.Holidays = holidays
	slip := ComputeSalarySlip(in)

	assert.Equal(t, 21, slip.Attendance.WorkingDays)
	// Full credit on every remaining working day keeps the factor at 1.
	assertAmount(t, 50000, slip.Earnings.Gross, "gross")
}

func TestComputeSalarySlip_TDSAndLoanScale(t *testing.T) {
	tpl := employee.CompensationTemplate{
		CTCAnnual:     decimal.NewFromInt(600000),
		TDS:           decimal.NewFromInt(1000),
		LoanDeduction: decimal.NewFromInt(500),
	}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeHalf)))

	assertAmount(t, 500, slip.Deductions.TDS, "tds")
	assertAmount(t, 250, slip.Deductions.LoanDeduction, "loan")
}

func TestComputeSalarySlip_NetNeverNegative(t *testing.T) {
	tpl := employee.CompensationTemplate{
		TDS: decimal.NewFromInt(100000),
	}
	slip := ComputeSalarySlip(baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull)))

	assertAmount(t, 0, slip.NetPay, "net pay")
}

func TestComputeSalarySlip_Deterministic(t *testing.T) {
	tpl := employee.CompensationTemplate{CTCAnnual: decimal.NewFromInt(600000)}
	in := baseInput(tpl, fullMonthLeave("emp-1", 2026, time.March, leave.DayTypeFull))

	first := ComputeSalarySlip(in)
	second := ComputeSalarySlip(in)

	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.Equal(t, first.Earnings.Gross.String(), second.Earnings.Gross.String())
	assert.Equal(t, first.Attendance, second.Attendance)
	assert.Equal(t, first.PeriodKey, second.PeriodKey)
}

func TestComputeSalarySlip_PeriodMetadata(t *testing.T) {
	slip := ComputeSalarySlip(baseInput(employee.CompensationTemplate{Currency: "INR"}, nil))

	assert.Equal(t, "2026-03", slip.PeriodKey)
	assert.Equal(t, "March 2026", slip.PeriodLabel)
	assert.Equal(t, "INR", slip.Currency)
	assert.Equal(t, "Ingenious HR Portal Pvt. Ltd.", slip.CompanyName)

	defaulted := ComputeSalarySlip(baseInput(employee.CompensationTemplate{}, nil))
	assert.Equal(t, "USD", defaulted.Currency)
}

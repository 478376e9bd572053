package payroll

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	attendancesvc "github.com/ingenious-hr/hr-portal-go/internal/service/attendance"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/holiday"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/calendar"
)

// Compensation defaults substituted when the template leaves a field zero, and
// statutory constants. Percent values are whole percents.
const (
	fallbackMonthlyGross   = 6000
	defaultBasicPct        = 40
	defaultHRAPct          = 20
	defaultPFRate          = 12
	defaultProfessionalTax = 200

	// ESI applies only while monthly gross stays at or under this ceiling.
	esiGrossCeiling = 21000

	// When no allowance is configured at all, conveyance and medical are carved
	// out of the target gross at these percents.
	fallbackConveyancePct = 10
	fallbackMedicalPct    = 8
)

// defaultESIRate is 0.75%, expressed as a decimal fraction of gross.
var defaultESIRate = decimal.NewFromFloat(0.75)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ComputeInput carries everything a slip computation needs, already loaded.
type ComputeInput struct {
	Employee employee.Employee
	Year     int
	Month    time.Month

	Sessions []attendance.Session
	Leaves   []leave.LeaveRequest
	Holidays []holiday.Holiday

	CompanyName string
	GeneratedAt time.Time
}

// ComputeSalarySlip derives a full slip from attendance and the employee's
// compensation template. Pure: same inputs always produce the same breakdowns.
//
// The attendance factor is paid days over working days (weekends and holidays
// excluded). Every monetary line is prorated by that factor and rounded to
// whole currency units independently; a rounding shortfall between the summed
// allowances and the prorated target gross is folded into the other-allowance
// line so the gross always matches the target exactly.
func ComputeSalarySlip(in ComputeInput) payroll.SalarySlip {
	t := in.Employee.Compensation

	monthlyGross := decimal.NewFromInt(fallbackMonthlyGross)
	if t.CTCAnnual.IsPositive() {
		monthlyGross = t.CTCAnnual.Div(twelve).Round(0)
	}

	summary, factor := attendanceFactor(in)

	targetGross := monthlyGross.Mul(factor).Round(0)

	basicFrac := defaultIfZero(t.BasicPct, defaultBasicPct).Div(hundred)
	hraFrac := defaultIfZero(t.HRAPct, defaultHRAPct).Div(hundred)

	basic := targetGross.Mul(basicFrac).Round(0)
	hra := targetGross.Mul(hraFrac).Round(0)

	conveyance := t.ConveyanceFixed.Mul(factor).Round(0)
	medical := t.MedicalFixed.Mul(factor).Round(0)
	special := t.SpecialAllowanceFixed.Mul(factor).Round(0)
	other := t.OtherAllowanceFixed.Mul(factor).Round(0)

	if t.ConveyanceFixed.IsZero() && t.MedicalFixed.IsZero() &&
		t.SpecialAllowanceFixed.IsZero() && t.OtherAllowanceFixed.IsZero() {
		conveyance = targetGross.Mul(decimal.NewFromInt(fallbackConveyancePct)).Div(hundred).Round(0)
		medical = targetGross.Mul(decimal.NewFromInt(fallbackMedicalPct)).Div(hundred).Round(0)
		special = decimal.Zero
		other = decimal.Zero
	}

	gross := basic.Add(hra).Add(conveyance).Add(medical).Add(special).Add(other)
	if gross.LessThan(targetGross) {
		other = other.Add(targetGross.Sub(gross))
		gross = targetGross
	}

	pf := decimal.Zero
	if t.PFNumber != "" {
		pf = basic.Mul(defaultIfZero(t.PFRate, defaultPFRate).Div(hundred)).Round(0)
	}

	esi := decimal.Zero
	if t.ESINumber != "" && gross.LessThanOrEqual(decimal.NewFromInt(esiGrossCeiling)) {
		esiFrac := t.ESIRate
		if esiFrac.IsZero() {
			esiFrac = defaultESIRate
		}
		esi = gross.Mul(esiFrac.Div(hundred)).Round(0)
	}

	profTax := decimal.Zero
	if gross.IsPositive() {
		profTax = defaultIfZero(t.ProfessionalTax, defaultProfessionalTax)
	}

	tds := t.TDS.Mul(factor).Round(0)
	loan := t.LoanDeduction.Mul(factor).Round(0)

	totalDeductions := pf.Add(esi).Add(profTax).Add(tds).Add(loan)

	net := gross.Sub(totalDeductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	currency := t.Currency
	if currency == "" {
		currency = "USD"
	}

	return payroll.SalarySlip{
		EmployeeID:  in.Employee.ID,
		PeriodKey:   calendar.PeriodKey(in.Year, in.Month),
		PeriodYear:  in.Year,
		PeriodMonth: in.Month,
		PeriodLabel: calendar.MonthLabel(in.Year, in.Month),
		CompanyName: in.CompanyName,
		Currency:    currency,
		Profile: payroll.EmployeeProfile{
			Name:         in.Employee.Name,
			EmployeeCode: in.Employee.EmployeeCode,
			Department:   in.Employee.Department,
			Designation:  in.Employee.Designation,
			Template:     t,
		},
		Attendance: summary,
		Earnings: payroll.Earnings{
			Basic:            basic,
			HRA:              hra,
			Conveyance:       conveyance,
			Medical:          medical,
			SpecialAllowance: special,
			OtherAllowance:   other,
			Gross:            gross,
		},
		Deductions: payroll.Deductions{
			PF:              pf,
			ESI:             esi,
			ProfessionalTax: profTax,
			TDS:             tds,
			LoanDeduction:   loan,
			Total:           totalDeductions,
		},
		NetPay:      net,
		GeneratedAt: in.GeneratedAt,
	}
}

// attendanceFactor walks every day of the period, skipping weekends and
// holidays, and credits each remaining working day from sessions and approved
// leave. The factor is clamped to [0, 1]; a month with no working days at all
// yields a zero factor rather than a division by zero.
func attendanceFactor(in ComputeInput) (payroll.AttendanceSummary, decimal.Decimal) {
	dates := make([]time.Time, 0, len(in.Holidays))
	for _, h := range in.Holidays {
		dates = append(dates, h.Date)
	}
	holidaySet := calendar.HolidaySet(dates, in.Year, in.Month)

	workingDays := 0
	paidDays := 0.0
	for _, day := range calendar.DaysInPeriod(in.Year, in.Month) {
		if calendar.IsWeekend(day) || calendar.IsHoliday(day, holidaySet) {
			continue
		}
		workingDays++
		paidDays += attendancesvc.ResolveCredit(in.Employee.ID, day, in.Sessions, in.Leaves)
	}

	summary := payroll.AttendanceSummary{
		WorkingDays:   workingDays,
		PaidDays:      round1(paidDays),
		LossOfPayDays: round1(math.Max(float64(workingDays)-paidDays, 0)),
	}

	if workingDays == 0 {
		return summary, decimal.Zero
	}
	factor := decimal.NewFromFloat(paidDays).Div(decimal.NewFromInt(int64(workingDays)))
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	if factor.GreaterThan(decimal.NewFromInt(1)) {
		factor = decimal.NewFromInt(1)
	}
	return summary, factor
}

func defaultIfZero(v decimal.Decimal, def int64) decimal.Decimal {
	if v.IsZero() {
		return decimal.NewFromInt(def)
	}
	return v
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

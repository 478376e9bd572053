package leave

import (
	"math"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
)

// MonthlyAccrualDays is the paid-leave accrual rate per calendar month of
// service, inclusive of the joining month. A business constant, not law.
const MonthlyAccrualDays = 1.5

// AccruedPaidLeave returns total paid leave accrued between the joining date
// and asOf, at MonthlyAccrualDays per month, rounded to one decimal. A nil or
// zero joining date falls back to January 1st of the asOf year. A joining date
// in the future clamps to zero.
func AccruedPaidLeave(joining *time.Time, asOf time.Time) float64 {
	start := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	if joining != nil && !joining.IsZero() {
		start = *joining
	}

	months := (asOf.Year()-start.Year())*12 + int(asOf.Month()) - int(start.Month()) + 1
	if months < 0 {
		months = 0
	}
	return round1(float64(months) * MonthlyAccrualDays)
}

// UsedPaidLeave sums the leave days of approved paid-leave requests. Requests
// persisted without a stored day count are recomputed from their date range.
func UsedPaidLeave(leaves []leave.LeaveRequest) float64 {
	var used float64
	for _, l := range leaves {
		if l.Type != leave.TypePaid || !l.IsApproved() {
			continue
		}
		days := l.LeaveDays
		if days == 0 {
			days = DayCount(l.FromDate, l.ToDate, l.DayType)
		}
		used += days
	}
	return used
}

// Summarize builds the accrued/used/remaining balance as of a date. Purely
// derived; never stored.
func Summarize(joining *time.Time, asOf time.Time, leaves []leave.LeaveRequest) leave.PaidLeaveSummary {
	accrued := AccruedPaidLeave(joining, asOf)
	used := round1(UsedPaidLeave(leaves))
	return leave.PaidLeaveSummary{
		Accrued:   accrued,
		Used:      used,
		Remaining: round1(math.Max(accrued-used, 0)),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

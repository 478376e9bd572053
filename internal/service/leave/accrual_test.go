package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
)

func TestAccruedPaidLeave_InclusiveOfJoiningMonth(t *testing.T) {
	joining := date(2026, time.January, 15)
	asOf := date(2026, time.March, 1)

	// January, February and March all count: 3 months x 1.5 days.
	assert.Equal(t, 4.5, AccruedPaidLeave(&joining, asOf))
}

func TestAccruedPaidLeave_SameMonthJoining(t *testing.T) {
	joining := date(2026, time.March, 20)
	asOf := date(2026, time.March, 25)

	assert.Equal(t, 1.5, AccruedPaidLeave(&joining, asOf))
}

func TestAccruedPaidLeave_AcrossYears(t *testing.T) {
	joining := date(2024, time.November, 1)
	asOf := date(2026, time.February, 1)

	// Nov 2024 through Feb 2026 is 16 months.
	assert.Equal(t, 24.0, AccruedPaidLeave(&joining, asOf))
}

func TestAccruedPaidLeave_FutureJoiningClampsToZero(t *testing.T) {
	joining := date(2026, time.September, 1)
	asOf := date(2026, time.March, 1)

	assert.Equal(t, 0.0, AccruedPaidLeave(&joining, asOf))
}

func TestAccruedPaidLeave_MissingJoiningFallsBackToJanuary(t *testing.T) {
	asOf := date(2026, time.April, 10)

	// Jan through Apr of the asOf year: 4 months.
	assert.Equal(t, 6.0, AccruedPaidLeave(nil, asOf))

	zero := time.Time{}
	assert.Equal(t, 6.0, AccruedPaidLeave(&zero, asOf))
}

func TestUsedPaidLeave_OnlyApprovedPaidLeaveCounts(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{Type: leave.TypePaid, Status: leave.StatusApproved, LeaveDays: 2},
		{Type: leave.TypePaid, Status: leave.StatusApproved, DayType: leave.DayTypeHalf, LeaveDays: 0.5},
		{Type: leave.TypeSick, Status: leave.StatusApproved, LeaveDays: 3},
		{Type: leave.TypePaid, Status: leave.StatusDenied, LeaveDays: 4},
		{Type: leave.TypePaid, Status: leave.PendingWith("HR"), LeaveDays: 1},
	}

	assert.Equal(t, 2.5, UsedPaidLeave(leaves))
}

func TestUsedPaidLeave_RecomputesMissingDayCount(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{
			Type:     leave.TypePaid,
			Status:   leave.StatusApproved,
			DayType:  leave.DayTypeFull,
			FromDate: date(2026, time.March, 2),
			ToDate:   date(2026, time.March, 4),
		},
	}

	assert.Equal(t, 3.0, UsedPaidLeave(leaves))
}

func TestSummarize_RemainingNeverNegative(t *testing.T) {
	joining := date(2026, time.March, 1)
	asOf := date(2026, time.March, 15)
	leaves := []leave.LeaveRequest{
		{Type: leave.TypePaid, Status: leave.StatusApproved, LeaveDays: 5},
	}

	summary := Summarize(&joining, asOf, leaves)

	assert.Equal(t, 1.5, summary.Accrued)
	assert.Equal(t, 5.0, summary.Used)
	assert.Equal(t, 0.0, summary.Remaining)
}

func TestSummarize_Balance(t *testing.T) {
	joining := date(2026, time.January, 1)
	asOf := date(2026, time.April, 30)
	leaves := []leave.LeaveRequest{
		{Type: leave.TypePaid, Status: leave.StatusApproved, LeaveDays: 2},
		{Type: leave.TypePaid, Status: leave.StatusApproved, DayType: leave.DayTypeHalf, LeaveDays: 0.5},
	}

	summary := Summarize(&joining, asOf, leaves)

	assert.Equal(t, 6.0, summary.Accrued)
	assert.Equal(t, 2.5, summary.Used)
	assert.Equal(t, 3.5, summary.Remaining)
}

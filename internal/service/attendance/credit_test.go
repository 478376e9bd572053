package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func session(employeeID string, day time.Time, minutes int) attendance.Session {
	return attendance.Session{EmployeeID: employeeID, Date: day, WorkedMinutes: minutes}
}

func TestResolveCredit_MinuteThresholds(t *testing.T) {
	day := date(2026, time.March, 10)

	tests := []struct {
		name     string
		minutes  int
		expected float64
	}{
		{"full day at threshold", 540, 1},
		{"above full day", 600, 1},
		{"half day at threshold", 300, 0.5},
		{"just below full day", 539, 0.5},
		{"minimal presence", 1, 0.5},
		{"no presence", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := []attendance.Session{session("emp-1", day, tt.minutes)}
			assert.Equal(t, tt.expected, ResolveCredit("emp-1", day, sessions, nil))
		})
	}
}

func TestResolveCredit_SumsSplitShifts(t *testing.T) {
	day := date(2026, time.March, 10)
	sessions := []attendance.Session{
		session("emp-1", day, 300),
		session("emp-1", day, 240),
	}

	assert.Equal(t, 1.0, ResolveCredit("emp-1", day, sessions, nil))
}

func TestResolveCredit_IgnoresOtherEmployeesAndDays(t *testing.T) {
	day := date(2026, time.March, 10)
	sessions := []attendance.Session{
		session("emp-2", day, 540),
		session("emp-1", date(2026, time.March, 11), 540),
	}

	assert.Equal(t, 0.0, ResolveCredit("emp-1", day, sessions, nil))
}

func TestResolveCredit_ApprovedLeaveTakesPrecedence(t *testing.T) {
	day := date(2026, time.March, 10)
	// Sessions say a full day was worked, but an approved half-day leave
	// covering the date wins.
	sessions := []attendance.Session{session("emp-1", day, 540)}
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		DayType:    leave.DayTypeHalf,
		FromDate:   day,
		ToDate:     day,
	}}

	assert.Equal(t, 0.5, ResolveCredit("emp-1", day, sessions, leaves))
}

func TestResolveCredit_FullDayLeave(t *testing.T) {
	day := date(2026, time.March, 10)
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		DayType:    leave.DayTypeFull,
		FromDate:   date(2026, time.March, 9),
		ToDate:     date(2026, time.March, 11),
	}}

	assert.Equal(t, 1.0, ResolveCredit("emp-1", day, nil, leaves))
}

func TestResolveCredit_UnapprovedLeaveIgnored(t *testing.T) {
	day := date(2026, time.March, 10)
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		Status:     leave.PendingWith("HR"),
		DayType:    leave.DayTypeFull,
		FromDate:   day,
		ToDate:     day,
	}}

	assert.Equal(t, 0.0, ResolveCredit("emp-1", day, nil, leaves))
}

func TestResolveCredit_LeaveOutsideRangeIgnored(t *testing.T) {
	day := date(2026, time.March, 10)
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		DayType:    leave.DayTypeFull,
		FromDate:   date(2026, time.March, 11),
		ToDate:     date(2026, time.March, 12),
	}}
	sessions := []attendance.Session{session("emp-1", day, 320)}

	assert.Equal(t, 0.5, ResolveCredit("emp-1", day, sessions, leaves))
}

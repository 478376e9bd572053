package attendance

import (
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/calendar"
)

// Minute thresholds for converting worked time into a day credit.
const (
	FullDayMinutes = 540
	HalfDayMinutes = 300
)

// ResolveCredit returns the day credit (0, 0.5 or 1) an employee earns for a
// calendar day. An approved leave request covering the day takes precedence
// over any clocked sessions: Half Day leave credits 0.5, any other approved
// leave credits a full day. Otherwise the credit comes from total worked
// minutes across the day's sessions. Any nonzero presence below the half-day
// threshold still earns 0.5.
func ResolveCredit(employeeID string, day time.Time, sessions []attendance.Session, leaves []leave.LeaveRequest) float64 {
	if credit, onLeave := leaveCredit(employeeID, day, leaves); onLeave {
		return credit
	}
	return sessionCredit(employeeID, day, sessions)
}

func leaveCredit(employeeID string, day time.Time, leaves []leave.LeaveRequest) (float64, bool) {
	for _, l := range leaves {
		if l.EmployeeID != employeeID || !l.IsApproved() || !l.Covers(day) {
			continue
		}
		if l.DayType == leave.DayTypeHalf {
			return 0.5, true
		}
		return 1, true
	}
	return 0, false
}

func sessionCredit(employeeID string, day time.Time, sessions []attendance.Session) float64 {
	key := calendar.DateKey(day)
	total := 0
	for _, s := range sessions {
		if s.EmployeeID != employeeID || calendar.DateKey(s.Date) != key {
			continue
		}
		total += s.WorkedMinutes
	}
	switch {
	case total >= FullDayMinutes:
		return 1
	case total >= HalfDayMinutes:
		return 0.5
	case total > 0:
		// Below the half-day threshold but present; still counts as half.
		return 0.5
	default:
		return 0
	}
}

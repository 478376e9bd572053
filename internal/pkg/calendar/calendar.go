package calendar

import (
	"fmt"
	"time"
)

// PeriodKey returns the canonical "YYYY-MM" identifier for a payroll period.
// Zero-padding keeps string ordering identical to chronological ordering.
func PeriodKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DateKey formats a date as "YYYY-MM-DD" for set lookups and storage keys.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthLabel returns a human-readable period label, e.g. "January 2026".
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Normalize truncates a timestamp to midnight in its own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInPeriod enumerates every calendar day of the given month, one entry per day.
func DaysInPeriod(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// HolidaySet builds a date-key set from holiday dates, keeping only dates that
// fall within the given year and month. Recurring-holiday lists often carry
// entries for other periods; those must not leak into this month's counting.
func HolidaySet(dates []time.Time, year int, month time.Month) map[string]struct{} {
	set := make(map[string]struct{})
	for _, d := range dates {
		if d.Year() == year && d.Month() == month {
			set[DateKey(d)] = struct{}{}
		}
	}
	return set
}

// IsHoliday reports whether the date is in the holiday set built by HolidaySet.
func IsHoliday(t time.Time, set map[string]struct{}) bool {
	_, ok := set[DateKey(t)]
	return ok
}

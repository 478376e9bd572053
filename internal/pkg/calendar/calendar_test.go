package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKey_ZeroPadding(t *testing.T) {
	assert.Equal(t, "2026-03", PeriodKey(2026, time.March))
	assert.Equal(t, "2026-11", PeriodKey(2026, time.November))
	assert.Equal(t, "0099-01", PeriodKey(99, time.January))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "January 2026", MonthLabel(2026, time.January))
	assert.Equal(t, "December 2025", MonthLabel(2025, time.December))
}

func TestDaysInPeriod_MonthLengths(t *testing.T) {
	assert.Len(t, DaysInPeriod(2026, time.January), 31)
	assert.Len(t, DaysInPeriod(2026, time.February), 28)
	assert.Len(t, DaysInPeriod(2024, time.February), 29) // leap year
	assert.Len(t, DaysInPeriod(2026, time.April), 30)
}

func TestDaysInPeriod_FirstAndLastDay(t *testing.T) {
	days := DaysInPeriod(2026, time.June)
	assert.Equal(t, "2026-06-01", DateKey(days[0]))
	assert.Equal(t, "2026-06-30", DateKey(days[len(days)-1]))
}

func TestNormalize_StripsTimeOfDay(t *testing.T) {
	ts := time.Date(2026, time.May, 14, 17, 45, 3, 999, time.UTC)
	assert.Equal(t, time.Date(2026, time.May, 14, 0, 0, 0, 0, time.UTC), Normalize(ts))
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestHolidaySet_FiltersOtherPeriods(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC),
	}

	set := HolidaySet(dates, 2026, time.January)

	assert.Len(t, set, 1)
	assert.True(t, IsHoliday(time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC), set))
	assert.False(t, IsHoliday(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), set))
}

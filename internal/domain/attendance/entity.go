package attendance

import "time"

// Session is one clock-in/clock-out span. Several sessions per employee per
// date are allowed (split shifts); day credit is computed from their summed
// worked minutes. Invariant: an employee has at most one session with a nil
// ClockOut at any time, enforced by the clock-in path.
type Session struct {
	ID         string
	EmployeeID string
	Date       time.Time // day granularity, midnight-normalized
	ClockIn    time.Time
	ClockOut   *time.Time
	// WorkedMinutes is computed at clock-out and may later be overridden by an
	// admin regularization.
	WorkedMinutes int
	RegularizedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the session has not been clocked out yet.
func (s Session) Open() bool {
	return s.ClockOut == nil
}

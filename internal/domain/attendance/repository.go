package attendance

import (
	"context"
	"time"
)

// SessionRepository - interface for the attendance_sessions table
type SessionRepository interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByID(ctx context.Context, id string) (Session, error)
	// GetOpenByEmployee returns the employee's open sessions, newest clock-in
	// first. More than one entry indicates a broken invariant upstream.
	GetOpenByEmployee(ctx context.Context, employeeID string) ([]Session, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Session, error)
	GetByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Session, error)
	Update(ctx context.Context, session Session) error
}

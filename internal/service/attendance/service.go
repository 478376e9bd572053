package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/calendar"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/ingenious-hr/hr-portal-go/internal/repository/postgresql"
)

// Service handles clock in/out sessions and day credits.
type Service struct {
	sessionRepo attendance.SessionRepository
	leaveRepo   leave.LeaveRequestRepository
	now         func() time.Time
	inTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, sessionRepo attendance.SessionRepository, leaveRepo leave.LeaveRequestRepository) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		leaveRepo:   leaveRepo,
		now:         time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.RunInTransaction(ctx, db, fn)
		},
	}
}

// ClockIn opens a new session for the employee. Refused while another session
// is still open; multiple closed sessions on the same day are fine.
func (s *Service) ClockIn(ctx context.Context, employeeID string) (attendance.Session, error) {
	var created attendance.Session
	err := s.inTx(ctx, func(txCtx context.Context) error {
		open, err := s.sessionRepo.GetOpenByEmployee(txCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to check open sessions: %w", err)
		}
		if len(open) > 0 {
			return attendance.ErrSessionAlreadyOpen
		}

		now := s.now()
		session := attendance.Session{
			EmployeeID: employeeID,
			Date:       calendar.Normalize(now),
			ClockIn:    now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		created, err = s.sessionRepo.Create(txCtx, session)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Session{}, err
	}
	return created, nil
}

// ClockOut closes the employee's open session, identified by its id rather
// than by position, and records the worked minutes.
func (s *Service) ClockOut(ctx context.Context, employeeID string) (attendance.Session, error) {
	var session attendance.Session
	err := s.inTx(ctx, func(txCtx context.Context) error {
		open, err := s.sessionRepo.GetOpenByEmployee(txCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to check open sessions: %w", err)
		}
		if len(open) == 0 {
			return attendance.ErrNoOpenSession
		}

		// Close the most recent open session by its id. Matching on the session
		// id keeps the close correct even if sessions were inserted out of order.
		session, err = s.sessionRepo.GetByID(txCtx, open[0].ID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		now := s.now()
		session.ClockOut = &now
		session.WorkedMinutes = workedMinutes(session.ClockIn, now)
		session.UpdatedAt = now

		if err := s.sessionRepo.Update(txCtx, session); err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Session{}, err
	}
	return session, nil
}

// Regularize lets an administrator override the worked minutes of a session,
// typically after a missed clock-out.
func (s *Service) Regularize(ctx context.Context, adminID string, req attendance.RegularizeRequest) (attendance.Session, error) {
	if err := req.Validate(); err != nil {
		return attendance.Session{}, err
	}

	var session attendance.Session
	err := s.inTx(ctx, func(txCtx context.Context) error {
		var err error
		session, err = s.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		now := s.now()
		session.WorkedMinutes = req.WorkedMinutes
		session.RegularizedBy = &adminID
		if session.ClockOut == nil {
			session.ClockOut = &now
		}
		session.UpdatedAt = now

		if err := s.sessionRepo.Update(txCtx, session); err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Session{}, err
	}
	return session, nil
}

// SessionsInRange returns the employee's sessions between two dates inclusive.
func (s *Service) SessionsInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	sessions, err := s.sessionRepo.GetByEmployeeInRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DayCredit resolves the credit for one employee-day from stored sessions and
// approved leave.
func (s *Service) DayCredit(ctx context.Context, employeeID string, day time.Time) (float64, error) {
	day = calendar.Normalize(day)
	sessions, err := s.sessionRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	leaves, err := s.leaveRepo.GetApprovedInRange(ctx, employeeID, day, day)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved leave: %w", err)
	}
	return ResolveCredit(employeeID, day, sessions, leaves), nil
}

// workedMinutes rounds the session span to whole minutes and clamps at zero
// so clock skew can never produce a negative duration.
func workedMinutes(in, out time.Time) int {
	minutes := int(math.Round(out.Sub(in).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

package postgresql

import (
	"context"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `
	id, employee_id, date, clock_in, clock_out, worked_minutes, regularized_by,
	created_at, updated_at
`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.ClockIn, &s.ClockOut, &s.WorkedMinutes, &s.RegularizedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *sessionRepositoryImpl) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, date, clock_in, clock_out, worked_minutes, regularized_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.EmployeeID, session.Date, session.ClockIn, session.ClockOut,
		session.WorkedMinutes, session.RegularizedBy,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return attendance.Session{}, err
	}

	return session, nil
}

func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE id = $1`

	s, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, err
	}
	return s, nil
}

func (r *sessionRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
	`

	return r.queryMany(ctx, q, query, employeeID)
}

func (r *sessionRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
		ORDER BY clock_in ASC
	`

	return r.queryMany(ctx, q, query, employeeID, date)
}

func (r *sessionRepositoryImpl) GetByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, clock_in ASC
	`

	return r.queryMany(ctx, q, query, employeeID, from, to)
}

func (r *sessionRepositoryImpl) Update(ctx context.Context, session attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $2, worked_minutes = $3, regularized_by = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		session.ID, session.ClockOut, session.WorkedMinutes, session.RegularizedBy,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepositoryImpl) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Session, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

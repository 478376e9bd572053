package postgresql

import (
	"context"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type, day_type, from_date, to_date, reason,
	leave_days, status, admin_comment, approval_flow, current_approval_index,
	created_at, updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.Type, &lr.DayType, &lr.FromDate, &lr.ToDate, &lr.Reason,
		&lr.LeaveDays, &lr.Status, &lr.AdminComment, &lr.Flow, &lr.CurrentApprovalIndex,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, day_type, from_date, to_date, reason,
			leave_days, status, admin_comment, approval_flow, current_approval_index,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type, request.DayType, request.FromDate, request.ToDate, request.Reason,
		request.LeaveDays, request.Status, request.AdminComment, request.Flow, request.CurrentApprovalIndex,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1 FOR UPDATE`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	return r.queryMany(ctx, q, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2
		  AND from_date <= $3 AND to_date >= $4
		ORDER BY from_date ASC
	`

	return r.queryMany(ctx, q, query, employeeID, leave.StatusApproved, to, from)
}

func (r *leaveRequestRepositoryImpl) GetApprovedByType(ctx context.Context, employeeID string, leaveType leave.LeaveType) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2 AND leave_type = $3
		ORDER BY from_date ASC
	`

	return r.queryMany(ctx, q, query, employeeID, leave.StatusApproved, leaveType)
}

func (r *leaveRequestRepositoryImpl) GetPendingForApprover(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// The pending step is the flow entry at current_approval_index.
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE current_approval_index >= 0
		  AND approval_flow -> current_approval_index ->> 'approver_id' = $1
		ORDER BY created_at ASC
	`

	return r.queryMany(ctx, q, query, approverID)
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, admin_comment = $3, approval_flow = $4,
			current_approval_index = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		request.ID, request.Status, request.AdminComment, request.Flow, request.CurrentApprovalIndex,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

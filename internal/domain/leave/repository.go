package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate loads the request with a row lock so a decision's
	// read-transition-update cycle serializes against concurrent decisions.
	// Must be called inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// GetApprovedInRange returns approved requests for the employee whose date
	// range overlaps [from, to].
	GetApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	// GetApprovedByType returns every approved request of the given type for
	// the employee, for accrual bookkeeping.
	GetApprovedByType(ctx context.Context, employeeID string, leaveType LeaveType) ([]LeaveRequest, error)
	// GetPendingForApprover returns requests whose pending step belongs to the
	// given approver.
	GetPendingForApprover(ctx context.Context, approverID string) ([]LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) error
}

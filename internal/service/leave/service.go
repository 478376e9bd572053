package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/ingenious-hr/hr-portal-go/internal/repository/postgresql"
)

// Service handles leave requests and their approval workflow.
type Service struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.RunInTransaction(ctx, db, fn)
		},
	}
}

// Submit files a new leave request for employeeID and builds its approver
// queue from the current employee directory.
func (s *Service) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	directory, err := s.employeeRepo.List(ctx)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to list employees: %w", err)
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	dayType := leave.DayType(req.DayType)
	if dayType == "" {
		dayType = leave.DayTypeFull
	}

	flow := BuildApprovalFlow(emp, directory, req.PreferredApproverIDs)

	now := s.now()
	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.LeaveType(req.Type),
		DayType:    dayType,
		FromDate:   from,
		ToDate:     to,
		Reason:     req.Reason,
		LeaveDays:  DayCount(from, to, dayType),
		Flow:       flow,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if len(flow) > 0 {
		request.CurrentApprovalIndex = 0
		request.Status = leave.PendingWith(flow[0].RoleLabel)
	} else {
		// No eligible approver exists; the request is created but can never
		// advance, and the generic status makes that visible.
		request.CurrentApprovalIndex = leave.NoActiveApprover
		request.Status = leave.StatusPending
	}

	var created leave.LeaveRequest
	err = s.inTx(ctx, func(txCtx context.Context) error {
		created, err = s.leaveRepo.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// Act records an approval decision by actorID on the given request.
func (s *Service) Act(ctx context.Context, requestID, actorID string, req leave.ActOnLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	decision, _ := leave.ParseDecision(req.Decision)

	// The locked read serializes concurrent decisions on the same request: the
	// second actor blocks until the first commits, then sees the advanced flow
	// and fails the Transition guard instead of overwriting it.
	var next leave.LeaveRequest
	err := s.inTx(ctx, func(txCtx context.Context) error {
		current, err := s.leaveRepo.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}

		next, err = Transition(current, actorID, decision, req.Comment, s.now())
		if err != nil {
			return err
		}

		if err := s.leaveRepo.Update(txCtx, next); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return next, nil
}

// Get returns one request by id.
func (s *Service) Get(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// ListForEmployee returns the employee's own requests, newest first.
func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := s.leaveRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListPendingForApprover returns requests currently waiting on the approver.
func (s *Service) ListPendingForApprover(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
	requests, err := s.leaveRepo.GetPendingForApprover(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return requests, nil
}

// PaidLeaveSummary computes the accrued/used/remaining paid-leave balance for
// the employee as of now.
func (s *Service) PaidLeaveSummary(ctx context.Context, employeeID string) (leave.PaidLeaveSummary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.PaidLeaveSummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	approved, err := s.leaveRepo.GetApprovedByType(ctx, employeeID, leave.TypePaid)
	if err != nil {
		return leave.PaidLeaveSummary{}, fmt.Errorf("failed to list approved paid leave: %w", err)
	}

	return Summarize(emp.JoiningDate, s.now(), approved), nil
}

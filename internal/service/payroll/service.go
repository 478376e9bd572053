package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/holiday"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/ingenious-hr/hr-portal-go/internal/repository/postgresql"
)

// Service generates and serves salary slips.
type Service struct {
	slipRepo     payroll.SalarySlipRepository
	employeeRepo employee.EmployeeRepository
	sessionRepo  attendance.SessionRepository
	leaveRepo    leave.LeaveRequestRepository
	holidayRepo  holiday.HolidayRepository

	companyName string
	now         func() time.Time
	inTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	db *database.DB,
	slipRepo payroll.SalarySlipRepository,
	employeeRepo employee.EmployeeRepository,
	sessionRepo attendance.SessionRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
	companyName string,
) *Service {
	return &Service{
		slipRepo:     slipRepo,
		employeeRepo: employeeRepo,
		sessionRepo:  sessionRepo,
		leaveRepo:    leaveRepo,
		holidayRepo:  holidayRepo,
		companyName:  companyName,
		now:          time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.RunInTransaction(ctx, db, fn)
		},
	}
}

// GenerateSlip computes a slip for the requested period from stored sessions,
// approved leave and the holiday list, and persists it as a new snapshot. The
// reads and the insert share one transaction so the snapshot reflects a single
// consistent view of the period.
func (s *Service) GenerateSlip(ctx context.Context, req payroll.GenerateSlipRequest) (payroll.SalarySlip, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySlip{}, err
	}
	month := time.Month(req.Month)

	var created payroll.SalarySlip
	err := s.inTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		first := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)

		sessions, err := s.sessionRepo.GetByEmployeeInRange(txCtx, emp.ID, first, last)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		leaves, err := s.leaveRepo.GetApprovedInRange(txCtx, emp.ID, first, last)
		if err != nil {
			return fmt.Errorf("failed to list approved leave: %w", err)
		}
		holidays, err := s.holidayRepo.GetByPeriod(txCtx, req.Year, month)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}

		slip := ComputeSalarySlip(ComputeInput{
			Employee:    emp,
			Year:        req.Year,
			Month:       month,
			Sessions:    sessions,
			Leaves:      leaves,
			Holidays:    holidays,
			CompanyName: s.companyName,
			GeneratedAt: s.now(),
		})

		created, err = s.slipRepo.Create(txCtx, slip)
		if err != nil {
			return fmt.Errorf("failed to create salary slip: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.SalarySlip{}, err
	}
	return created, nil
}

// GetSlip returns one slip snapshot by id.
func (s *Service) GetSlip(ctx context.Context, id string) (payroll.SalarySlip, error) {
	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}
	return slip, nil
}

// GetLatestForPeriod returns the newest snapshot for an employee and period.
func (s *Service) GetLatestForPeriod(ctx context.Context, employeeID, periodKey string) (payroll.SalarySlip, error) {
	slip, err := s.slipRepo.GetLatestByEmployeePeriod(ctx, employeeID, periodKey)
	if err != nil {
		return payroll.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}
	return slip, nil
}

// ListForEmployee returns all of an employee's slip snapshots, newest first.
func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]payroll.SalarySlip, error) {
	slips, err := s.slipRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	return slips, nil
}

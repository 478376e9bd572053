package employee

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
)

// Service handles the employee directory and payroll setup.
type Service struct {
	employeeRepo employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) *Service {
	return &Service{employeeRepo: employeeRepo}
}

// Create onboards a new employee with a bcrypt password hash. The repository
// surfaces ErrEmailExists on a duplicate email.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.Role(req.Role)
	if role == "" {
		role = employee.RoleEmployee
	}

	emp := employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   req.Department,
		Designation:  req.Designation,
		ManagerID:    req.ManagerID,
		JoiningDate:  parseDate(req.JoiningDate),
		EmployeeCode: req.EmployeeCode,
		Permissions:  req.Permissions,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// UpdateProfile replaces the employee's directory profile fields.
func (s *Service) UpdateProfile(ctx context.Context, id string, req employee.UpdateProfileRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp.Name = req.Name
	emp.Email = req.Email
	emp.Department = req.Department
	emp.Designation = req.Designation
	emp.ManagerID = req.ManagerID
	emp.JoiningDate = parseDate(req.JoiningDate)
	emp.EmployeeCode = req.EmployeeCode

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return emp, nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Get returns one employee by id.
func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List returns the full directory.
func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateCompensation replaces the employee's compensation template. Slips
// already generated keep their frozen copy of the previous template.
func (s *Service) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	template := req.Template()
	if err := s.employeeRepo.UpdateCompensation(ctx, emp.ID, template); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update compensation: %w", err)
	}
	emp.Compensation = template
	return emp, nil
}

// UpdateAccess changes an employee's role and permission set.
func (s *Service) UpdateAccess(ctx context.Context, id string, role employee.Role, permissions []string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.UpdateAccess(ctx, emp.ID, role, permissions); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update access: %w", err)
	}
	emp.Role = role
	emp.Permissions = permissions
	return emp, nil
}

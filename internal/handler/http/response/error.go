package response

import (
	"errors"
	"net/http"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/auth"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCurrentApprover):
		Forbidden(w, "Not the current approver for this request")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrSessionAlreadyOpen):
		Conflict(w, "An attendance session is already open")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open attendance session to close")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalarySlipNotFound):
		NotFound(w, "Salary slip not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

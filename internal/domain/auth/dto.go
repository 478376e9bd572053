package auth

import (
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResult is the service-level outcome of a successful login.
type LoginResult struct {
	Employee         employee.Employee
	AccessToken      string
	AccessExpiresAt  int64
	RefreshToken     string
	RefreshExpiresAt int64
}

type LoginResponse struct {
	Employee        employee.EmployeeResponse `json:"employee"`
	AccessToken     string                    `json:"access_token"`
	AccessExpiresAt int64                     `json:"access_expires_at"`
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/auth"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/jwt"
)

// Service handles authentication against the employee directory.
type Service struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login verifies credentials and issues an access/refresh token pair. A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResult{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResult{
		Employee:         emp,
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Logout revokes the presented access token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

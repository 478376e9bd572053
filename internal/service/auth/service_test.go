package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/auth"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateCompensation(_ context.Context, _ string, _ employee.CompensationTemplate) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateAccess(_ context.Context, _ string, _ employee.Role, _ []string) error {
	return nil
}

func newTestService(t *testing.T) (*Service, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			Email:        "asha@example.com",
			PasswordHash: string(hash),
			Role:         employee.RoleEmployee,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewService(repo, jwtService), jwtService
}

func TestService_Login_Success(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", result.Employee.ID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Greater(t, result.AccessExpiresAt, int64(0))
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Login_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Logout_RevokesToken(t *testing.T) {
	svc, jwtService := newTestService(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(result.AccessToken))
}

func TestService_Logout_EmptyToken(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Logout(context.Background(), "")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee), nextID: 1}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.nextID++
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

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateCompensation(_ context.Context, id string, template employee.CompensationTemplate) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Compensation = template
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateAccess(_ context.Context, id string, role employee.Role, permissions []string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Role = role
	e.Permissions = permissions
	f.employees[id] = e
	return nil
}

func TestService_Create_HashesPassword(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Password:    "correct horse",
		Department:  "Engineering",
		JoiningDate: "2026-01-05",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, employee.RoleEmployee, created.Role)
	require.NotNil(t, created.JoiningDate)
	assert.Equal(t, "2026-01-05", created.JoiningDate.Format("2006-01-02"))
	assert.NotEqual(t, "correct horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")))
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Email: "asha@example.com"})
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "role")
}

func TestService_UpdateProfile_ReplacesFields(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{
		ID:         "emp-1",
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Department: "Engineering",
	})
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), "emp-1", employee.UpdateProfileRequest{
		Name:        "Asha Verma",
		Email:       "asha.verma@example.com",
		Department:  "Platform",
		Designation: "Staff Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "asha.verma@example.com", updated.Email)
	assert.Equal(t, "Platform", updated.Department)

	stored, err := repo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", stored.Designation)
}

func TestService_UpdateProfile_NotFound(t *testing.T) {
	svc := NewService(newFakeEmployeeRepo())

	_, err := svc.UpdateProfile(context.Background(), "ghost", employee.UpdateProfileRequest{
		Name:  "Asha Verma",
		Email: "asha@example.com",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

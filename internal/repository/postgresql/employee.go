package postgresql

import (
	"context"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, email, password_hash, role, department, designation,
	manager_id, joining_date, employee_code, permissions, compensation,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role, &e.Department, &e.Designation,
		&e.ManagerID, &e.JoiningDate, &e.EmployeeCode, &e.Permissions, &e.Compensation,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, password_hash, role, department, designation,
			manager_id, joining_date, employee_code, permissions, compensation,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name, emp.Email, emp.PasswordHash, emp.Role, emp.Department, emp.Designation,
		emp.ManagerID, emp.JoiningDate, emp.EmployeeCode, emp.Permissions, emp.Compensation,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, department = $4, designation = $5,
			manager_id = $6, joining_date = $7, employee_code = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Department, emp.Designation,
		emp.ManagerID, emp.JoiningDate, emp.EmployeeCode,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateCompensation(ctx context.Context, id string, template employee.CompensationTemplate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET compensation = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, template)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) UpdateAccess(ctx context.Context, id string, role employee.Role, permissions []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET role = $2, permissions = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, role, permissions)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

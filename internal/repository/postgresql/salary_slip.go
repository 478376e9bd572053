package postgresql

import (
	"context"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salarySlipRepositoryImpl struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) payroll.SalarySlipRepository {
	return &salarySlipRepositoryImpl{db: db}
}

const salarySlipColumns = `
	id, employee_id, period_key, period_year, period_month, period_label,
	company_name, currency, employee_profile, attendance_summary,
	earnings, deductions, net_pay, generated_at
`

func scanSalarySlip(row pgx.Row) (payroll.SalarySlip, error) {
	var s payroll.SalarySlip
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PeriodKey, &s.PeriodYear, &s.PeriodMonth, &s.PeriodLabel,
		&s.CompanyName, &s.Currency, &s.Profile, &s.Attendance,
		&s.Earnings, &s.Deductions, &s.NetPay, &s.GeneratedAt,
	)
	return s, err
}

func (r *salarySlipRepositoryImpl) Create(ctx context.Context, slip payroll.SalarySlip) (payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_slips (
			id, employee_id, period_key, period_year, period_month, period_label,
			company_name, currency, employee_profile, attendance_summary,
			earnings, deductions, net_pay, generated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		slip.EmployeeID, slip.PeriodKey, slip.PeriodYear, slip.PeriodMonth, slip.PeriodLabel,
		slip.CompanyName, slip.Currency, slip.Profile, slip.Attendance,
		slip.Earnings, slip.Deductions, slip.NetPay, slip.GeneratedAt,
	).Scan(&slip.ID)

	if err != nil {
		return payroll.SalarySlip{}, err
	}

	return slip, nil
}

func (r *salarySlipRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salarySlipColumns + ` FROM salary_slips WHERE id = $1`

	s, err := scanSalarySlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalarySlip{}, payroll.ErrSalarySlipNotFound
		}
		return payroll.SalarySlip{}, err
	}
	return s, nil
}

func (r *salarySlipRepositoryImpl) GetLatestByEmployeePeriod(ctx context.Context, employeeID, periodKey string) (payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips
		WHERE employee_id = $1 AND period_key = $2
		ORDER BY generated_at DESC
		LIMIT 1
	`

	s, err := scanSalarySlip(q.QueryRow(ctx, query, employeeID, periodKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalarySlip{}, payroll.ErrSalarySlipNotFound
		}
		return payroll.SalarySlip{}, err
	}
	return s, nil
}

func (r *salarySlipRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips
		WHERE employee_id = $1
		ORDER BY period_key DESC, generated_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []payroll.SalarySlip
	for rows.Next() {
		s, err := scanSalarySlip(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}

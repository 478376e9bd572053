package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee entity. Password hash and compensation template live on the same
// record because the portal is single-tenant and employees double as users.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	Designation  string
	ManagerID    *string
	JoiningDate  *time.Time
	EmployeeCode string
	Permissions  []string

	Compensation CompensationTemplate

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the employee holds the administrator role.
func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CompensationTemplate holds the per-employee salary structure. Percentages are
// stored as whole percent values (40 means 40%). A zero value in any field means
// "not configured"; the payroll engine substitutes documented defaults instead
// of failing. Presence of a PF/ESI registration number gates that deduction.
type CompensationTemplate struct {
	CTCAnnual decimal.Decimal `json:"ctc_annual"`
	Currency  string          `json:"currency"`

	BasicPct decimal.Decimal `json:"basic_pct"`
	HRAPct   decimal.Decimal `json:"hra_pct"`

	ConveyanceFixed       decimal.Decimal `json:"conveyance_fixed"`
	MedicalFixed          decimal.Decimal `json:"medical_fixed"`
	SpecialAllowanceFixed decimal.Decimal `json:"special_allowance_fixed"`
	OtherAllowanceFixed   decimal.Decimal `json:"other_allowance_fixed"`

	PFRate  decimal.Decimal `json:"pf_rate"`
	ESIRate decimal.Decimal `json:"esi_rate"`

	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`

	PFNumber  string `json:"pf_number"`
	ESINumber string `json:"esi_number"`

	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`
}

// Value implements driver.Valuer for JSONB storage.
func (t CompensationTemplate) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (t *CompensationTemplate) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CompensationTemplate: invalid type")
	}
	return json.Unmarshal(bytes, t)
}

package employee

import (
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeeResponse is the public shape of an employee record. The password hash
// never leaves the service layer.
type EmployeeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Department   string   `json:"department"`
	Designation  string   `json:"designation"`
	ManagerID    *string  `json:"manager_id"`
	JoiningDate  *string  `json:"joining_date"`
	EmployeeCode string   `json:"employee_code"`
	Permissions  []string `json:"permissions"`

	Compensation CompensationTemplate `json:"compensation"`
}

// ToResponse maps the entity to its API shape.
func (e Employee) ToResponse() EmployeeResponse {
	var joining *string
	if e.JoiningDate != nil {
		d := e.JoiningDate.Format("2006-01-02")
		joining = &d
	}
	permissions := e.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         string(e.Role),
		Department:   e.Department,
		Designation:  e.Designation,
		ManagerID:    e.ManagerID,
		JoiningDate:  joining,
		EmployeeCode: e.EmployeeCode,
		Permissions:  permissions,
		Compensation: e.Compensation,
	}
}

// CreateEmployeeRequest onboards a new employee. The password arrives in the
// clear and is hashed by the service before it reaches the repository.
type CreateEmployeeRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	Department   string   `json:"department"`
	Designation  string   `json:"designation"`
	ManagerID    *string  `json:"manager_id"`
	JoiningDate  string   `json:"joining_date"`
	EmployeeCode string   `json:"employee_code"`
	Permissions  []string `json:"permissions"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != "" && r.Role != string(RoleAdmin) && r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin or employee"})
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest replaces an employee's directory profile. Role,
// permissions and compensation have their own endpoints.
type UpdateProfileRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	ManagerID    *string `json:"manager_id"`
	JoiningDate  string  `json:"joining_date"`
	EmployeeCode string  `json:"employee_code"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCompensationRequest replaces an employee's compensation template
// wholesale. Partial patching is deliberately not supported: HR submits the
// full payroll-setup form each time.
type UpdateCompensationRequest struct {
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

func (r UpdateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CTCAnnual.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ctc_annual", Message: "must not be negative"})
	}
	if r.BasicPct.IsNegative() || r.BasicPct.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "basic_pct", Message: "must be between 0 and 100"})
	}
	if r.HRAPct.IsNegative() || r.HRAPct.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "hra_pct", Message: "must be between 0 and 100"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"conveyance_fixed":        r.ConveyanceFixed,
		"medical_fixed":           r.MedicalFixed,
		"special_allowance_fixed": r.SpecialAllowanceFixed,
		"other_allowance_fixed":   r.OtherAllowanceFixed,
		"professional_tax":        r.ProfessionalTax,
		"tds":                     r.TDS,
		"loan_deduction":          r.LoanDeduction,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Template converts the request into the stored template shape.
func (r UpdateCompensationRequest) Template() CompensationTemplate {
	return CompensationTemplate{
		CTCAnnual:             r.CTCAnnual,
		Currency:              r.Currency,
		BasicPct:              r.BasicPct,
		HRAPct:                r.HRAPct,
		ConveyanceFixed:       r.ConveyanceFixed,
		MedicalFixed:          r.MedicalFixed,
		SpecialAllowanceFixed: r.SpecialAllowanceFixed,
		OtherAllowanceFixed:   r.OtherAllowanceFixed,
		PFRate:                r.PFRate,
		ESIRate:               r.ESIRate,
		ProfessionalTax:       r.ProfessionalTax,
		TDS:                   r.TDS,
		LoanDeduction:         r.LoanDeduction,
		PFNumber:              r.PFNumber,
		ESINumber:             r.ESINumber,
		AccountNumber:         r.AccountNumber,
		IFSCCode:              r.IFSCCode,
		BankName:              r.BankName,
	}
}

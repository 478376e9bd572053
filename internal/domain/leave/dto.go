package leave

import (
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
)

// SubmitLeaveRequest is the payload for applying for leave. Preferred approvers
// are honored in caller order; ineligible entries are dropped, and remaining
// eligible approvers are appended as fallbacks.
type SubmitLeaveRequest struct {
	Type                 string   `json:"type"`
	DayType              string   `json:"day_type"`
	FromDate             string   `json:"from_date"`
	ToDate               string   `json:"to_date"`
	Reason               string   `json:"reason"`
	PreferredApproverIDs []string `json:"preferred_approver_ids"`
}

func (r SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown leave type"})
	}
	if r.DayType != "" && r.DayType != string(DayTypeFull) && r.DayType != string(DayTypeHalf) {
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "must be Full Day or Half Day"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must not be before from_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ActOnLeaveRequest is the payload for an approval action.
type ActOnLeaveRequest struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment"`
}

func (r ActOnLeaveRequest) Validate() error {
	if _, ok := ParseDecision(r.Decision); !ok {
		return validator.ValidationErrors{{Field: "decision", Message: "must be Approved or Denied"}}
	}
	return nil
}

// PaidLeaveSummary is the accrued/used/remaining card on the leave page.
// It is recomputed on demand, never stored.
type PaidLeaveSummary struct {
	Accrued   float64 `json:"accrued"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

// ApprovalStepResponse mirrors ApprovalStep for API output.
type ApprovalStepResponse struct {
	ApproverID string     `json:"approver_id"`
	RoleLabel  string     `json:"role_label"`
	Status     string     `json:"status"`
	Comment    string     `json:"comment,omitempty"`
	ActedAt    *time.Time `json:"acted_at,omitempty"`
}

type LeaveRequestResponse struct {
	ID                   string                 `json:"id"`
	EmployeeID           string                 `json:"employee_id"`
	Type                 string                 `json:"type"`
	DayType              string                 `json:"day_type"`
	FromDate             string                 `json:"from_date"`
	ToDate               string                 `json:"to_date"`
	Reason               string                 `json:"reason"`
	LeaveDays            float64                `json:"leave_days"`
	Status               string                 `json:"status"`
	AdminComment         string                 `json:"admin_comment,omitempty"`
	ApprovalFlow         []ApprovalStepResponse `json:"approval_flow"`
	CurrentApprovalIndex int                    `json:"current_approval_index"`
	CreatedAt            time.Time              `json:"created_at"`
}

// ToResponse maps the entity to its API shape.
func (r LeaveRequest) ToResponse() LeaveRequestResponse {
	steps := make([]ApprovalStepResponse, 0, len(r.Flow))
	for _, s := range r.Flow {
		steps = append(steps, ApprovalStepResponse{
			ApproverID: s.ApproverID,
			RoleLabel:  s.RoleLabel,
			Status:     string(s.Status),
			Comment:    s.Comment,
			ActedAt:    s.ActedAt,
		})
	}
	return LeaveRequestResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		Type:                 string(r.Type),
		DayType:              string(r.DayType),
		FromDate:             r.FromDate.Format("2006-01-02"),
		ToDate:               r.ToDate.Format("2006-01-02"),
		Reason:               r.Reason,
		LeaveDays:            r.LeaveDays,
		Status:               r.Status,
		AdminComment:         r.AdminComment,
		ApprovalFlow:         steps,
		CurrentApprovalIndex: r.CurrentApprovalIndex,
		CreatedAt:            r.CreatedAt,
	}
}

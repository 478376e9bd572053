package leave

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type LeaveType string

const (
	TypePaid   LeaveType = "Paid Leave"
	TypePH     LeaveType = "PH Leave"
	TypeCasual LeaveType = "Casual Leave"
	TypeSick   LeaveType = "Sick Leave"
	TypeUnpaid LeaveType = "Unpaid Leave"
)

// Valid reports whether the leave type is one of the enumerated kinds.
func (t LeaveType) Valid() bool {
	switch t {
	case TypePaid, TypePH, TypeCasual, TypeSick, TypeUnpaid:
		return true
	}
	return false
}

type DayType string

const (
	DayTypeFull DayType = "Full Day"
	DayTypeHalf DayType = "Half Day"
)

type StepStatus string

const (
	StepPending  StepStatus = "Pending"
	StepAwaiting StepStatus = "Awaiting"
	StepApproved StepStatus = "Approved"
	StepDenied   StepStatus = "Denied"
)

type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionDenied   Decision = "Denied"
)

// ApprovalStep is one entry in a request's approver queue. The role label is
// resolved when the queue is built and frozen, so later title changes never
// rewrite history.
type ApprovalStep struct {
	ApproverID string     `json:"approver_id"`
	RoleLabel  string     `json:"role_label"`
	Status     StepStatus `json:"status"`
	Comment    string     `json:"comment"`
	ActedAt    *time.Time `json:"acted_at"`
}

// ApprovalFlow is the ordered approver queue. Invariant: at most one step is
// Pending, all steps before it are Approved and all steps after it Awaiting,
// unless a Denied step terminated the flow.
type ApprovalFlow []ApprovalStep

// Value implements driver.Valuer for JSONB storage.
func (f ApprovalFlow) Value() (driver.Value, error) {
	if f == nil {
		f = ApprovalFlow{}
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (f *ApprovalFlow) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ApprovalFlow: invalid type")
	}
	return json.Unmarshal(bytes, f)
}

// NoActiveApprover is the CurrentApprovalIndex sentinel for requests with no
// pending step: terminal requests and degenerate requests with an empty queue.
const NoActiveApprover = -1

const (
	StatusPending        = "Pending"
	StatusApproved       = "Approved"
	StatusDenied         = "Denied"
	statusPendingWithFmt = "Pending with "
)

// PendingWith formats the overall status for the step currently holding the
// request, e.g. "Pending with HR".
func PendingWith(roleLabel string) string {
	return statusPendingWithFmt + roleLabel
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	Type    LeaveType
	DayType DayType

	FromDate time.Time
	ToDate   time.Time
	Reason   string

	// LeaveDays is fixed at submission: 0.5 for Half Day regardless of span,
	// else the inclusive day count.
	LeaveDays float64

	Status               string
	AdminComment         string
	Flow                 ApprovalFlow
	CurrentApprovalIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the request can never transition again. A request
// created with an empty approver queue stays "Pending" forever and is also
// terminal by construction.
func (r LeaveRequest) IsTerminal() bool {
	if r.Status == StatusApproved || r.Status == StatusDenied {
		return true
	}
	return len(r.Flow) == 0
}

// IsApproved reports whether every step passed.
func (r LeaveRequest) IsApproved() bool {
	return r.Status == StatusApproved
}

// CurrentApprover returns the approver id of the pending step, or "" if the
// request has no active approver.
func (r LeaveRequest) CurrentApprover() string {
	if r.CurrentApprovalIndex < 0 || r.CurrentApprovalIndex >= len(r.Flow) {
		return ""
	}
	return r.Flow[r.CurrentApprovalIndex].ApproverID
}

// Covers reports whether the request's inclusive date range contains the given
// calendar day. Comparison is done on day granularity.
func (r LeaveRequest) Covers(day time.Time) bool {
	d := day.Format("2006-01-02")
	return r.FromDate.Format("2006-01-02") <= d && d <= r.ToDate.Format("2006-01-02")
}

// ParseDecision maps a raw action string onto a Decision.
func ParseDecision(s string) (Decision, bool) {
	switch Decision(strings.TrimSpace(s)) {
	case DecisionApproved:
		return DecisionApproved, true
	case DecisionDenied:
		return DecisionDenied, true
	}
	return "", false
}

package leave

import (
	"strings"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
)

// RoleLabel resolves the label shown for an approver in an approval flow.
// Administrators act as HR; otherwise the label is inferred from the free-text
// designation. The inference is legacy behavior carried over deliberately:
// labels are resolved once at queue-build time and frozen into the steps, so
// the brittleness is contained to submission.
func RoleLabel(e employee.Employee) string {
	if e.IsAdmin() {
		return "HR"
	}
	designation := strings.ToLower(e.Designation)
	if strings.Contains(designation, "manager") {
		return "Manager"
	}
	if strings.Contains(designation, "senior") {
		return "Senior"
	}
	return "Approver"
}

// EligibleApprovers returns who may approve a request from emp: the direct
// manager (if any), every administrator, and every senior in emp's department.
// An employee never approves their own request.
func EligibleApprovers(emp employee.Employee, directory []employee.Employee) []employee.Employee {
	var approvers []employee.Employee

	if emp.ManagerID != nil {
		for _, candidate := range directory {
			if candidate.ID == *emp.ManagerID && candidate.ID != emp.ID {
				approvers = append(approvers, candidate)
				break
			}
		}
	}

	for _, candidate := range directory {
		if candidate.ID == emp.ID {
			continue
		}
		isSenior := strings.Contains(strings.ToLower(candidate.Designation), "senior")
		if candidate.IsAdmin() || (isSenior && candidate.Department == emp.Department) {
			approvers = append(approvers, candidate)
		}
	}

	return approvers
}

// BuildApprovalFlow assembles the approver queue for a new request: preferred
// approvers first (caller order, filtered to eligible), then any remaining
// eligible approvers, deduplicated. Step 0 starts Pending, the rest Awaiting.
// An empty result means the request is created degenerate and never advances.
func BuildApprovalFlow(emp employee.Employee, directory []employee.Employee, preferredIDs []string) leave.ApprovalFlow {
	eligible := EligibleApprovers(emp, directory)
	eligibleByID := make(map[string]employee.Employee, len(eligible))
	for _, a := range eligible {
		eligibleByID[a.ID] = a
	}

	var ordered []employee.Employee
	for _, id := range preferredIDs {
		if a, ok := eligibleByID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	preferredSet := make(map[string]struct{}, len(preferredIDs))
	for _, id := range preferredIDs {
		preferredSet[id] = struct{}{}
	}
	for _, a := range eligible {
		if _, picked := preferredSet[a.ID]; !picked {
			ordered = append(ordered, a)
		}
	}

	seen := make(map[string]struct{}, len(ordered))
	flow := make(leave.ApprovalFlow, 0, len(ordered))
	for _, a := range ordered {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		status := leave.StepAwaiting
		if len(flow) == 0 {
			status = leave.StepPending
		}
		flow = append(flow, leave.ApprovalStep{
			ApproverID: a.ID,
			RoleLabel:  RoleLabel(a),
			Status:     status,
		})
	}
	return flow
}

// DayCount returns the number of leave days for an inclusive date range.
// Half Day is always exactly 0.5 regardless of span. Invalid or reversed
// ranges yield 0; the function never fails. Dates are re-anchored to UTC
// midnight so daylight-saving shifts cannot skew the count.
func DayCount(from, to time.Time, dayType leave.DayType) float64 {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	if dayType == leave.DayTypeHalf {
		return 0.5
	}
	return float64(end.Sub(start)/(24*time.Hour)) + 1
}

// Transition applies one approval action and returns the next request value.
// The flow is copied, never mutated in place. Only the approver holding the
// pending step may act; anyone else gets ErrNotCurrentApprover. A Denied
// decision terminates the request and freezes all later steps at Awaiting.
func Transition(req leave.LeaveRequest, actorID string, decision leave.Decision, comment string, at time.Time) (leave.LeaveRequest, error) {
	if req.IsTerminal() {
		return req, leave.ErrLeaveAlreadyProcessed
	}
	idx := req.CurrentApprovalIndex
	if idx < 0 || idx >= len(req.Flow) {
		return req, leave.ErrLeaveAlreadyProcessed
	}
	current := req.Flow[idx]
	if current.ApproverID != actorID || current.Status != leave.StepPending {
		return req, leave.ErrNotCurrentApprover
	}

	flow := make(leave.ApprovalFlow, len(req.Flow))
	copy(flow, req.Flow)
	actedAt := at

	if decision == leave.DecisionDenied {
		flow[idx].Status = leave.StepDenied
		flow[idx].Comment = comment
		flow[idx].ActedAt = &actedAt
		req.Status = leave.StatusDenied
		req.CurrentApprovalIndex = leave.NoActiveApprover
	} else {
		flow[idx].Status = leave.StepApproved
		flow[idx].Comment = comment
		flow[idx].ActedAt = &actedAt
		next := idx + 1
		if next < len(flow) {
			flow[next].Status = leave.StepPending
			req.CurrentApprovalIndex = next
			req.Status = leave.PendingWith(flow[next].RoleLabel)
		} else {
			req.Status = leave.StatusApproved
			req.CurrentApprovalIndex = leave.NoActiveApprover
		}
	}

	if comment != "" {
		req.AdminComment = comment
	}
	req.Flow = flow
	req.UpdatedAt = at
	return req, nil
}

package attendance

import (
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/pkg/validator"
)

type SessionResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	Date          string     `json:"date"`
	ClockIn       time.Time  `json:"clock_in"`
	ClockOut      *time.Time `json:"clock_out,omitempty"`
	WorkedMinutes int        `json:"worked_minutes"`
	RegularizedBy *string    `json:"regularized_by,omitempty"`
}

func (s Session) ToResponse() SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Date:          s.Date.Format("2006-01-02"),
		ClockIn:       s.ClockIn,
		ClockOut:      s.ClockOut,
		WorkedMinutes: s.WorkedMinutes,
		RegularizedBy: s.RegularizedBy,
	}
}

// RegularizeRequest overrides the worked minutes of a session, e.g. when an
// employee forgot to clock out.
type RegularizeRequest struct {
	SessionID     string `json:"session_id"`
	WorkedMinutes int    `json:"worked_minutes"`
}

func (r RegularizeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{Field: "session_id", Message: "session_id is required"})
	}
	if r.WorkedMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "worked_minutes", Message: "must not be negative"})
	}
	if r.WorkedMinutes > 24*60 {
		errs = append(errs, validator.ValidationError{Field: "worked_minutes", Message: "must not exceed one day"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/attendance"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/middleware"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
	attendancesvc "github.com/ingenious-hr/hr-portal-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Regularize(w http.ResponseWriter, r *http.Request)
	GetMySessions(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendancesvc.Service
}

func NewAttendanceHandler(attendanceService *attendancesvc.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	session, err := h.attendanceService.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", session.ToResponse())
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	session, err := h.attendanceService.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", session.ToResponse())
}

// Regularize implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Regularize(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req attendance.RegularizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Regularize decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	session, err := h.attendanceService.Regularize(r.Context(), adminID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session regularized successfully", session.ToResponse())
}

// GetMySessions implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMySessions(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	from, fromOK := parseDateParam(r, "from")
	to, toOK := parseDateParam(r, "to")
	if !fromOK || !toOK {
		response.BadRequest(w, "from and to must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	sessions, err := h.attendanceService.SessionsInRange(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, s.ToResponse())
	}
	response.Success(w, responses)
}

func parseDateParam(r *http.Request, name string) (time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", value)
	return t, err == nil
}

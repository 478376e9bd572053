package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/middleware"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/pdf"
	payrollsvc "github.com/ingenious-hr/hr-portal-go/internal/service/payroll"
)

type PayrollHandler interface {
	GenerateSlip(w http.ResponseWriter, r *http.Request)
	GetSlip(w http.ResponseWriter, r *http.Request)
	GetSlipPDF(w http.ResponseWriter, r *http.Request)
	GetMyLatestSlip(w http.ResponseWriter, r *http.Request)
	GetMySlips(w http.ResponseWriter, r *http.Request)
	GetEmployeeSlips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *payrollsvc.Service
}

func NewPayrollHandler(payrollService *payrollsvc.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GenerateSlip implements PayrollHandler.
func (h *PayrollHandlerImpl) GenerateSlip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateSlip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	slip, err := h.payrollService.GenerateSlip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated successfully", slip.ToResponse())
}

// GetSlip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSlip(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.loadSlip(w, r)
	if !ok {
		return
	}
	response.Success(w, slip.ToResponse())
}

// GetSlipPDF implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSlipPDF(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.loadSlip(w, r)
	if !ok {
		return
	}

	data, err := pdf.RenderSalarySlip(slip)
	if err != nil {
		slog.Error("Failed to render salary slip PDF", "error", err, "slip_id", slip.ID)
		response.InternalServerError(w, "Failed to render salary slip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "salary-slip-"+slip.PeriodKey+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GetMyLatestSlip implements PayrollHandler. Returns the caller's newest slip
// snapshot for the period given by the period query parameter ("YYYY-MM").
func (h *PayrollHandlerImpl) GetMyLatestSlip(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	periodKey := r.URL.Query().Get("period")
	if _, err := time.Parse("2006-01", periodKey); err != nil {
		response.BadRequest(w, "period must be a valid period key (YYYY-MM)", nil)
		return
	}

	slip, err := h.payrollService.GetLatestForPeriod(r.Context(), employeeID, periodKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip.ToResponse())
}

// GetMySlips implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMySlips(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	h.listSlips(w, r, employeeID)
}

// GetEmployeeSlips implements PayrollHandler.
func (h *PayrollHandlerImpl) GetEmployeeSlips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	h.listSlips(w, r, employeeID)
}

func (h *PayrollHandlerImpl) listSlips(w http.ResponseWriter, r *http.Request, employeeID string) {
	slips, err := h.payrollService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]payroll.SalarySlipResponse, 0, len(slips))
	for _, s := range slips {
		responses = append(responses, s.ToResponse())
	}
	response.Success(w, responses)
}

// loadSlip fetches the slip and enforces that non-admins only see their own.
func (h *PayrollHandlerImpl) loadSlip(w http.ResponseWriter, r *http.Request) (payroll.SalarySlip, bool) {
	slipID := chi.URLParam(r, "id")
	if slipID == "" {
		response.BadRequest(w, "Salary slip ID is required", nil)
		return payroll.SalarySlip{}, false
	}

	slip, err := h.payrollService.GetSlip(r.Context(), slipID)
	if err != nil {
		response.HandleError(w, err)
		return payroll.SalarySlip{}, false
	}

	employeeID, _ := middleware.EmployeeID(r)
	if !middleware.IsAdmin(r) && slip.EmployeeID != employeeID {
		response.Forbidden(w, "Not allowed to view this salary slip")
		return payroll.SalarySlip{}, false
	}
	return slip, true
}

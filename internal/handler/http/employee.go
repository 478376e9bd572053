package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/middleware"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
	employeesvc "github.com/ingenious-hr/hr-portal-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdateCompensation(w http.ResponseWriter, r *http.Request)
	UpdateAccess(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeesvc.Service
}

func NewEmployeeHandler(employeeService *employeesvc.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp.ToResponse())
}

// UpdateProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateProfile(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", emp.ToResponse())
}

// GetMe implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	emp, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp.ToResponse())
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp.ToResponse())
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, e.ToResponse())
	}
	response.Success(w, responses)
}

// UpdateCompensation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateCompensation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCompensation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateCompensation(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation updated successfully", emp.ToResponse())
}

// UpdateAccess implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateAccess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req struct {
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAccess decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	role := employee.Role(req.Role)
	if role != employee.RoleAdmin && role != employee.RoleEmployee {
		response.BadRequest(w, "Role must be admin or employee", nil)
		return
	}

	emp, err := h.employeeService.UpdateAccess(r.Context(), id, role, req.Permissions)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access updated successfully", emp.ToResponse())
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/leave"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/middleware"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
	leavesvc "github.com/ingenious-hr/hr-portal-go/internal/service/leave"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Act(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetPendingApprovals(w http.ResponseWriter, r *http.Request)
	GetPaidLeaveSummary(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leavesvc.Service
}

func NewLeaveHandler(leaveService *leavesvc.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Submit(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created.ToResponse())
}

// Act implements LeaveHandler.
func (h *LeaveHandlerImpl) Act(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.ActOnLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Act on leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.leaveService.Act(r.Context(), requestID, actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded successfully", updated.ToResponse())
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := h.leaveService.Get(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Only the owner, the approvers, or an admin may view a request.
	employeeID, _ := middleware.EmployeeID(r)
	if !middleware.IsAdmin(r) && request.EmployeeID != employeeID && !isApprover(request, employeeID) {
		response.Forbidden(w, "Not allowed to view this leave request")
		return
	}

	response.Success(w, request.ToResponse())
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requests, err := h.leaveService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toLeaveResponses(requests))
}

// GetPendingApprovals implements LeaveHandler.
func (h *LeaveHandlerImpl) GetPendingApprovals(w http.ResponseWriter, r *http.Request) {
	approverID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requests, err := h.leaveService.ListPendingForApprover(r.Context(), approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toLeaveResponses(requests))
}

// GetPaidLeaveSummary implements LeaveHandler.
func (h *LeaveHandlerImpl) GetPaidLeaveSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	summary, err := h.leaveService.PaidLeaveSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func isApprover(request leave.LeaveRequest, employeeID string) bool {
	for _, step := range request.Flow {
		if step.ApproverID == employeeID {
			return true
		}
	}
	return false
}

func toLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, r.ToResponse())
	}
	return responses
}

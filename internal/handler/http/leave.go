package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erp-suite/leave-backend-go/internal/domain/leave"
	"github.com/erp-suite/leave-backend-go/internal/handler/http/response"
	"github.com/erp-suite/leave-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetBalance(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := l.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", request)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := l.leaveService.Approve(r.Context(), requestID, req.ApprovedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", approved)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := l.leaveService.Reject(r.Context(), requestID, req.RejectionReason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", rejected)
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	balance, err := l.leaveService.Delete(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", balance)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeSerial := chi.URLParam(r, "employeeSerial")
	if employeeSerial == "" {
		response.BadRequest(w, "Employee serial is required", nil)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}

	balance, err := l.leaveService.GetBalance(r.Context(), employeeSerial, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// History implements LeaveHandler.
func (l *LeaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeSerial := chi.URLParam(r, "employeeSerial")
	if employeeSerial == "" {
		response.BadRequest(w, "Employee serial is required", nil)
		return
	}

	history, err := l.leaveService.History(r.Context(), employeeSerial)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// Pending implements LeaveHandler.
func (l *LeaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := l.leaveService.PendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// Team implements LeaveHandler.
func (l *LeaveHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	officerSerial := chi.URLParam(r, "reportingOfficer")
	if officerSerial == "" {
		response.BadRequest(w, "Reporting officer serial is required", nil)
		return
	}

	requests, err := l.leaveService.TeamRequests(r.Context(), officerSerial)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Calendar implements LeaveHandler.
func (l *LeaveHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	start, startOK := validator.IsValidDate(r.URL.Query().Get("start_date"))
	end, endOK := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !startOK || !endOK {
		response.BadRequest(w, "start_date and end_date are required in YYYY-MM-DD format", nil)
		return
	}

	leaves, err := l.leaveService.CalendarLeaves(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

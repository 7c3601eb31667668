package leave

import (
	"time"

	"github.com/erp-suite/leave-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeSerial string `json:"employee_serial"`
	LeaveType      string `json:"leave_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Reason         string `json:"reason"`
}

func (r ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeSerial) {
		errs = append(errs, validator.ValidationError{Field: "employee_serial", Message: "Employee serial is required"})
	}

	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type must be one of CASUAL, SICK, PAID, UNPAID"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed inclusive date range. Validate must have
// succeeded first.
func (r ApplyLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type ApproveLeaveRequest struct {
	ApprovedBy string `json:"approved_by"`
}

func (r ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{Field: "approved_by", Message: "Approver serial is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

func (r RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{Field: "rejection_reason", Message: "Rejection reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest carries a status transition to the repository.
// Only the fields relevant to the transition are set.
type UpdateStatusRequest struct {
	ID              string
	Status          RequestStatus
	ApprovedBy      *string
	ApprovedDate    *time.Time
	RejectionReason *string
}

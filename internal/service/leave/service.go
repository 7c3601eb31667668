package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/erp-suite/leave-backend-go/internal/domain/employee"
	"github.com/erp-suite/leave-backend-go/internal/domain/holiday"
	"github.com/erp-suite/leave-backend-go/internal/domain/leave"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
)

// Service implements leave.LeaveService: the request state machine
// (PENDING -> APPROVED | REJECTED, hard delete from any state) on top
// of the balance ledger.
type Service struct {
	tx        database.TxRunner
	requests  leave.LeaveRequestRepository
	balances  leave.LeaveBalanceRepository
	employees employee.EmployeeRepository
	holidays  holiday.HolidayRepository
}

func NewService(
	tx database.TxRunner,
	requestRepository leave.LeaveRequestRepository,
	balanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
	holidayRepository holiday.HolidayRepository,
) *Service {
	return &Service{
		tx:        tx,
		requests:  requestRepository,
		balances:  balanceRepository,
		employees: employeeRepository,
		holidays:  holidayRepository,
	}
}

// Apply validates the candidate request and persists it as PENDING.
// The balance check here is advisory only; nothing is deducted until
// approval.
func (s *Service) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	exists, err := s.employees.Exists(ctx, req.EmployeeSerial)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return leave.Request{}, employee.ErrEmployeeNotFound
	}

	startDate, endDate := req.Dates()

	hasOverlap, err := s.requests.HasOverlapping(ctx, req.EmployeeSerial, startDate, endDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if hasOverlap {
		return leave.Request{}, leave.ErrOverlappingLeave
	}

	activeHolidays, err := s.holidays.GetActiveBetween(ctx, startDate, endDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to fetch holidays: %w", err)
	}

	totalDays := CountWorkingDays(startDate, endDate, NewHolidaySet(activeHolidays))
	if totalDays == 0 {
		return leave.Request{}, leave.ErrInvalidDateRange
	}

	balance, err := s.balances.GetOrCreate(ctx, req.EmployeeSerial, time.Now().Year())
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to load leave balance: %w", err)
	}

	leaveType := leave.Type(req.LeaveType)
	if balance.Remaining(leaveType) < totalDays {
		return leave.Request{}, leave.ErrInsufficientBalance
	}

	request := leave.Request{
		EmployeeSerial: req.EmployeeSerial,
		Type:           leaveType,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalDays:      totalDays,
		Reason:         req.Reason,
		Status:         leave.RequestStatusPending,
		AppliedDate:    time.Now(),
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave request applied",
		"request_id", created.ID,
		"employee_serial", created.EmployeeSerial,
		"leave_type", string(created.Type),
		"total_days", created.TotalDays,
	)

	return created, nil
}

// Approve deducts the balance and flips the status inside one
// transaction. The deduction is a conditional update, so two
// concurrent approvals against the same counter cannot both win;
// the loser sees ErrInsufficientBalance and the request stays
// PENDING.
func (s *Service) Approve(ctx context.Context, requestID string, approvedBy string) (leave.Request, error) {
	var approved leave.Request

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if request.Status != leave.RequestStatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		year := time.Now().Year()

		// Materialize the row first so a balance never touched since
		// onboarding still deducts from the default allotment.
		if _, err := s.balances.GetOrCreate(ctx, request.EmployeeSerial, year); err != nil {
			return fmt.Errorf("failed to load leave balance: %w", err)
		}

		// Balance commits before the status flips; a failed deduction
		// aborts the transaction with the request untouched.
		if err := s.balances.CheckAndDeduct(ctx, request.EmployeeSerial, year, request.Type, request.TotalDays); err != nil {
			return err
		}

		approvedAt := time.Now()
		request.Status = leave.RequestStatusApproved
		request.ApprovedBy = &approvedBy
		request.ApprovedDate = &approvedAt

		if err := s.requests.UpdateStatus(ctx, leave.UpdateStatusRequest{
			ID:           request.ID,
			Status:       leave.RequestStatusApproved,
			ApprovedBy:   &approvedBy,
			ApprovedDate: &approvedAt,
		}); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	slog.Info("leave request approved",
		"request_id", approved.ID,
		"employee_serial", approved.EmployeeSerial,
		"approved_by", approvedBy,
		"total_days", approved.TotalDays,
	)

	return approved, nil
}

// Reject transitions a pending request to REJECTED. No ledger
// interaction.
func (s *Service) Reject(ctx context.Context, requestID string, rejectionReason string) (leave.Request, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if request.Status != leave.RequestStatusPending {
		return leave.Request{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.RequestStatusRejected
	request.RejectionReason = &rejectionReason

	if err := s.requests.UpdateStatus(ctx, leave.UpdateStatusRequest{
		ID:              request.ID,
		Status:          leave.RequestStatusRejected,
		RejectionReason: &rejectionReason,
	}); err != nil {
		return leave.Request{}, err
	}

	return request, nil
}

// Delete removes the request permanently. An approved request first
// restores its consumed days, clamped at the default allotment, in
// the same transaction as the row delete.
func (s *Service) Delete(ctx context.Context, requestID string) (leave.Balance, error) {
	var remaining leave.Balance

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		year := time.Now().Year()

		if request.Status == leave.RequestStatusApproved {
			if _, err := s.balances.GetOrCreate(ctx, request.EmployeeSerial, year); err != nil {
				return fmt.Errorf("failed to load leave balance: %w", err)
			}
			if err := s.balances.Restore(ctx, request.EmployeeSerial, year, request.Type, request.TotalDays); err != nil {
				return fmt.Errorf("failed to restore leave balance: %w", err)
			}
		}

		if err := s.requests.Delete(ctx, request.ID); err != nil {
			return err
		}

		remaining, err = s.balances.GetOrCreate(ctx, request.EmployeeSerial, year)
		return err
	})
	if err != nil {
		return leave.Balance{}, err
	}

	slog.Info("leave request deleted", "request_id", requestID)

	return remaining, nil
}

// GetBalance returns the (employee, year) balance, materializing it
// at the default allotment on first access.
func (s *Service) GetBalance(ctx context.Context, employeeSerial string, year int) (leave.Balance, error) {
	exists, err := s.employees.Exists(ctx, employeeSerial)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return leave.Balance{}, employee.ErrEmployeeNotFound
	}

	return s.balances.GetOrCreate(ctx, employeeSerial, year)
}

// History implements leave.LeaveService.
func (s *Service) History(ctx context.Context, employeeSerial string) ([]leave.Request, error) {
	return s.requests.ListByEmployee(ctx, employeeSerial)
}

// PendingRequests implements leave.LeaveService.
func (s *Service) PendingRequests(ctx context.Context) ([]leave.Request, error) {
	return s.requests.ListByStatus(ctx, leave.RequestStatusPending)
}

// TeamRequests implements leave.LeaveService.
func (s *Service) TeamRequests(ctx context.Context, reportingOfficer string) ([]leave.Request, error) {
	return s.requests.ListByReportingOfficer(ctx, reportingOfficer)
}

// CalendarLeaves implements leave.LeaveService.
func (s *Service) CalendarLeaves(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	return s.requests.ListApprovedBetween(ctx, start, end)
}

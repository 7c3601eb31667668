package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// HasOverlapping reports whether the employee already has a
	// PENDING or APPROVED request sharing any calendar date with
	// [start, end].
	HasOverlapping(ctx context.Context, employeeSerial string, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, update UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error

	ListByEmployee(ctx context.Context, employeeSerial string) ([]Request, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]Request, error)
	ListByReportingOfficer(ctx context.Context, officerSerial string) ([]Request, error)
	ListApprovedBetween(ctx context.Context, start, end time.Time) ([]Request, error)
}

type LeaveBalanceRepository interface {
	// GetOrCreate returns the balance row for (employee, year),
	// creating it at the default allotment if absent. Creation is
	// race-safe: concurrent first access yields exactly one row.
	GetOrCreate(ctx context.Context, employeeSerial string, year int) (Balance, error)
	// CheckAndDeduct atomically verifies the counter covers days and
	// decrements it, failing with ErrInsufficientBalance otherwise.
	// No partial effect is ever observable.
	CheckAndDeduct(ctx context.Context, employeeSerial string, year int, leaveType Type, days int) error
	// Restore increments the counter, clamped at DefaultAllotment.
	Restore(ctx context.Context, employeeSerial string, year int, leaveType Type, days int) error
}

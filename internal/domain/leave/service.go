package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (Request, error)
	Approve(ctx context.Context, requestID string, approvedBy string) (Request, error)
	Reject(ctx context.Context, requestID string, rejectionReason string) (Request, error)
	// Delete removes the request permanently, restoring consumed
	// balance first when the request was approved. Returns the
	// balance after any restoration.
	Delete(ctx context.Context, requestID string) (Balance, error)
	GetBalance(ctx context.Context, employeeSerial string, year int) (Balance, error)

	History(ctx context.Context, employeeSerial string) ([]Request, error)
	PendingRequests(ctx context.Context) ([]Request, error)
	TeamRequests(ctx context.Context, reportingOfficer string) ([]Request, error)
	CalendarLeaves(ctx context.Context, start, end time.Time) ([]Request, error)
}

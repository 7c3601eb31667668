package postgresql

import (
	"context"
	"time"

	"github.com/erp-suite/leave-backend-go/internal/domain/leave"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_serial, leave_type, start_date, end_date,
			total_days, reason, status, applied_date,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeSerial, string(request.Type),
		request.StartDate, request.EndDate,
		request.TotalDays, request.Reason, string(request.Status), request.AppliedDate,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, err
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_serial, leave_type, start_date, end_date,
			   total_days, reason, status, applied_date,
			   approved_by, approved_date, rejection_reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var request leave.Request
	var leaveType, status string
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeSerial, &leaveType,
		&request.StartDate, &request.EndDate,
		&request.TotalDays, &request.Reason, &status, &request.AppliedDate,
		&request.ApprovedBy, &request.ApprovedDate, &request.RejectionReason,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}
	request.Type = leave.Type(leaveType)
	request.Status = leave.RequestStatus(status)

	return request, nil
}

// HasOverlapping implements leave.LeaveRequestRepository. Two ranges
// overlap when they share any calendar date; rejected requests never
// block.
func (r *leaveRequestRepositoryImpl) HasOverlapping(
	ctx context.Context,
	employeeSerial string,
	start, end time.Time,
) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_serial = $1
			AND status IN ('PENDING', 'APPROVED')
			AND NOT (end_date < $2 OR start_date > $3)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeSerial, start, end).Scan(&exists)

	return exists, err
}

// UpdateStatus implements leave.LeaveRequestRepository. The WHERE
// clause re-asserts the pending precondition so a transition applied
// twice affects zero rows and surfaces as already-processed.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, update leave.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = $2,
			approved_date = $3,
			rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = 'PENDING'
	`

	result, err := q.Exec(ctx, query,
		string(update.Status), update.ApprovedBy, update.ApprovedDate,
		update.RejectionReason, update.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrLeaveAlreadyProcessed
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

const requestListColumns = `
	lr.id, lr.employee_serial, lr.leave_type, lr.start_date, lr.end_date,
	lr.total_days, lr.reason, lr.status, lr.applied_date,
	lr.approved_by, lr.approved_date, lr.rejection_reason,
	lr.created_at, lr.updated_at,
	e.full_name AS employee_name
`

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.Request, 0)
	for rows.Next() {
		var request leave.Request
		var leaveType, status string
		if err := rows.Scan(
			&request.ID, &request.EmployeeSerial, &leaveType,
			&request.StartDate, &request.EndDate,
			&request.TotalDays, &request.Reason, &status, &request.AppliedDate,
			&request.ApprovedBy, &request.ApprovedDate, &request.RejectionReason,
			&request.CreatedAt, &request.UpdatedAt,
			&request.EmployeeName,
		); err != nil {
			return nil, err
		}
		request.Type = leave.Type(leaveType)
		request.Status = leave.RequestStatus(status)
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeSerial string) ([]leave.Request, error) {
	query := `
		SELECT ` + requestListColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_serial = e.serial_number
		WHERE lr.employee_serial = $1
		ORDER BY lr.applied_date DESC
	`
	return r.queryRequests(ctx, query, employeeSerial)
}

// ListByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.RequestStatus) ([]leave.Request, error) {
	query := `
		SELECT ` + requestListColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_serial = e.serial_number
		WHERE lr.status = $1
		ORDER BY lr.applied_date DESC
	`
	return r.queryRequests(ctx, query, string(status))
}

// ListByReportingOfficer implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByReportingOfficer(ctx context.Context, officerSerial string) ([]leave.Request, error) {
	query := `
		SELECT ` + requestListColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_serial = e.serial_number
		WHERE e.reporting_officer = $1
		ORDER BY lr.applied_date DESC
	`
	return r.queryRequests(ctx, query, officerSerial)
}

// ListApprovedBetween implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedBetween(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	query := `
		SELECT ` + requestListColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_serial = e.serial_number
		WHERE lr.status = 'APPROVED'
		AND NOT (lr.end_date < $1 OR lr.start_date > $2)
		ORDER BY lr.start_date
	`
	return r.queryRequests(ctx, query, start, end)
}

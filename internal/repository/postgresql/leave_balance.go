package postgresql

import (
	"context"
	"fmt"

	"github.com/erp-suite/leave-backend-go/internal/domain/leave"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const balanceColumns = `
	id, employee_serial, year,
	casual_balance, sick_balance, paid_balance, unpaid_balance,
	created_at, updated_at
`

func scanBalance(row pgx.Row) (leave.Balance, error) {
	var b leave.Balance
	err := row.Scan(
		&b.ID, &b.EmployeeSerial, &b.Year,
		&b.Casual, &b.Sick, &b.Paid, &b.Unpaid,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// GetOrCreate implements leave.LeaveBalanceRepository. The insert
// races through the unique constraint on (employee_serial, year):
// ON CONFLICT DO NOTHING means concurrent first-time callers all
// converge on the single surviving row read back afterwards.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeSerial string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO leave_balances (
			id, employee_serial, year,
			casual_balance, sick_balance, paid_balance, unpaid_balance,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $4, $4, $4,
			NOW(), NOW()
		)
		ON CONFLICT (employee_serial, year) DO NOTHING
	`

	if _, err := q.Exec(ctx, insert, uuid.NewString(), employeeSerial, year, leave.DefaultAllotment); err != nil {
		return leave.Balance{}, err
	}

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances
		WHERE employee_serial = $1 AND year = $2
	`

	b, err := scanBalance(q.QueryRow(ctx, query, employeeSerial, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}

	return b, nil
}

// CheckAndDeduct implements leave.LeaveBalanceRepository. The check
// and the decrement are one conditional UPDATE; rows-affected
// arbitrates concurrent deductions, so a losing race reports
// insufficient balance and the counter can never go negative.
func (r *leaveBalanceRepositoryImpl) CheckAndDeduct(ctx context.Context, employeeSerial string, year int, leaveType leave.Type, days int) error {
	q := GetQuerier(ctx, r.db)

	col := leaveType.BalanceColumn()
	if col == "" {
		return fmt.Errorf("unknown leave type %q", leaveType)
	}

	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %[1]s = %[1]s - $1,
			updated_at = NOW()
		WHERE employee_serial = $2 AND year = $3
		AND %[1]s >= $1
	`, col)

	result, err := q.Exec(ctx, query, days, employeeSerial, year)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}

// Restore implements leave.LeaveBalanceRepository. LEAST keeps the
// clamp atomic with the increment: restoring never raises a counter
// past the default allotment.
func (r *leaveBalanceRepositoryImpl) Restore(ctx context.Context, employeeSerial string, year int, leaveType leave.Type, days int) error {
	q := GetQuerier(ctx, r.db)

	col := leaveType.BalanceColumn()
	if col == "" {
		return fmt.Errorf("unknown leave type %q", leaveType)
	}

	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %[1]s = LEAST($1, %[1]s + $2),
			updated_at = NOW()
		WHERE employee_serial = $3 AND year = $4
	`, col)

	result, err := q.Exec(ctx, query, leave.DefaultAllotment, days, employeeSerial, year)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

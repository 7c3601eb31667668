package postgresql

import (
	"context"

	"github.com/erp-suite/leave-backend-go/internal/domain/employee"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetBySerial implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetBySerial(ctx context.Context, serialNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT serial_number, full_name, reporting_officer, created_at, updated_at
		FROM employees
		WHERE serial_number = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, serialNumber).Scan(
		&emp.SerialNumber, &emp.FullName, &emp.ReportingOfficer,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// Exists implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Exists(ctx context.Context, serialNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE serial_number = $1)`

	var exists bool
	err := q.QueryRow(ctx, query, serialNumber).Scan(&exists)

	return exists, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT serial_number, full_name, reporting_officer, created_at, updated_at
		FROM employees
		ORDER BY serial_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.SerialNumber, &emp.FullName, &emp.ReportingOfficer,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

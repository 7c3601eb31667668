package employee

import (
	"context"

	"github.com/erp-suite/leave-backend-go/internal/domain/employee"
)

// Service exposes read-only directory lookups. Employee records are
// provisioned by an external HR system; this service never mutates
// them.
type Service struct {
	employees employee.EmployeeRepository
}

func NewService(employeeRepository employee.EmployeeRepository) *Service {
	return &Service{employees: employeeRepository}
}

func (s *Service) GetBySerial(ctx context.Context, serialNumber string) (employee.Employee, error) {
	return s.employees.GetBySerial(ctx, serialNumber)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.List(ctx)
}

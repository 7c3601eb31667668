package employee

import "context"

type EmployeeRepository interface {
	GetBySerial(ctx context.Context, serialNumber string) (Employee, error)
	Exists(ctx context.Context, serialNumber string) (bool, error)
	List(ctx context.Context) ([]Employee, error)
}

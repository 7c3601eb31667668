package employee

import "time"

// Employee entity. Serial numbers are the organization-wide employee
// key; the reporting officer field carries the serial of the
// employee's manager and is nil for top-level staff.
type Employee struct {
	SerialNumber     string
	FullName         string
	ReportingOfficer *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

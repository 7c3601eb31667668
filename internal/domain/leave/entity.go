package leave

import "time"

// DefaultAllotment is the per-type annual entitlement. It seeds every
// lazily created balance row and caps restoration when an approved
// request is deleted.
const DefaultAllotment = 12

// Type is the closed set of leave types. Each maps to exactly one
// counter column on the balance row.
type Type string

const (
	TypeCasual Type = "CASUAL"
	TypeSick   Type = "SICK"
	TypePaid   Type = "PAID"
	TypeUnpaid Type = "UNPAID"
)

func Types() []Type {
	return []Type{TypeCasual, TypeSick, TypePaid, TypeUnpaid}
}

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeSick, TypePaid, TypeUnpaid:
		return true
	}
	return false
}

// BalanceColumn returns the leave_balances column the type deducts
// from. Adding a leave type means adding a constant here and a
// column; nothing else dispatches on the type.
func (t Type) BalanceColumn() string {
	switch t {
	case TypeCasual:
		return "casual_balance"
	case TypeSick:
		return "sick_balance"
	case TypePaid:
		return "paid_balance"
	case TypeUnpaid:
		return "unpaid_balance"
	}
	return ""
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Request entity. TotalDays is derived from the calendar at apply
// time and never recomputed afterwards.
type Request struct {
	ID             string
	EmployeeSerial string
	Type           Type

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string
	Status RequestStatus

	AppliedDate     time.Time
	ApprovedBy      *string
	ApprovedDate    *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Denormalized for list responses
	EmployeeName *string
}

// Balance entity: one row per (employee serial, year), one counter
// per leave type. Counters never go below zero.
type Balance struct {
	ID             string
	EmployeeSerial string
	Year           int

	Casual int
	Sick   int
	Paid   int
	Unpaid int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining returns the counter for the given leave type.
func (b Balance) Remaining(t Type) int {
	switch t {
	case TypeCasual:
		return b.Casual
	case TypeSick:
		return b.Sick
	case TypePaid:
		return b.Paid
	case TypeUnpaid:
		return b.Unpaid
	}
	return 0
}

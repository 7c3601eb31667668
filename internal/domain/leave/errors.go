package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("Leave request not found")
	ErrInsufficientBalance   = errors.New("Insufficient leave balance")
	ErrOverlappingLeave      = errors.New("Leave dates overlap with existing leave application")
	ErrInvalidDateRange      = errors.New("Leave request must cover at least one working day")
	ErrLeaveAlreadyProcessed = errors.New("Leave request is not in pending status")
	ErrBalanceNotFound       = errors.New("Leave balance not found")
)

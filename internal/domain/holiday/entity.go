package holiday

import "time"

type HolidayStatus string

const (
	HolidayStatusActive   HolidayStatus = "A"
	HolidayStatusInactive HolidayStatus = "I"
)

// Holiday entity. Only active holidays exclude dates from
// working-day counts.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        *string // National, Regional, Company-specific
	IsOptional  bool
	Year        int
	Description *string
	Status      HolidayStatus
}

package leave

import (
	"time"

	"github.com/erp-suite/leave-backend-go/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

// HolidaySet is a lookup set of calendar dates, keyed by
// YYYY-MM-DD so timezone and clock components never affect matching.
type HolidaySet map[string]struct{}

func NewHolidaySet(holidays []holiday.Holiday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format(dateLayout)] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[date.Format(dateLayout)]
	return ok
}

// CountWorkingDays walks the inclusive range [start, end] and counts
// the dates that are neither Saturday/Sunday nor in the holiday set.
// start == end yields 0 or 1 depending on that single date.
func CountWorkingDays(start, end time.Time, holidays HolidaySet) int {
	workingDays := 0

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			continue
		}
		if holidays.Contains(current) {
			continue
		}
		workingDays++
	}

	return workingDays
}

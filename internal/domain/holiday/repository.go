package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByYear(ctx context.Context, year int) ([]Holiday, error)
	// GetActiveBetween returns active holidays whose date falls in
	// [start, end] inclusive, ordered by date.
	GetActiveBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
}

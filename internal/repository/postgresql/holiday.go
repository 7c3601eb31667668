package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/erp-suite/leave-backend-go/internal/domain/holiday"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Status == "" {
		h.Status = holiday.HolidayStatusActive
	}
	h.Year = h.Date.Year()

	query := `
		INSERT INTO company_holidays (
			id, holiday_name, holiday_date, holiday_type,
			is_optional, year, description, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		h.ID, h.Name, h.Date, h.Type,
		h.IsOptional, h.Year, h.Description, string(h.Status),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation on (holiday_date, status)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrDuplicateHolidayDate
		}
		return holiday.Holiday{}, err
	}

	return h, nil
}

// GetByYear implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, holiday_name, holiday_date, holiday_type,
			   is_optional, year, description, status
		FROM company_holidays
		WHERE year = $1 AND status = 'A'
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		var status string
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Type,
			&h.IsOptional, &h.Year, &h.Description, &status,
		); err != nil {
			return nil, err
		}
		h.Status = holiday.HolidayStatus(status)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// GetActiveBetween implements holiday.HolidayRepository. The range is
// inclusive on both ends; holidays outside it are never fetched.
func (r *holidayRepositoryImpl) GetActiveBetween(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, holiday_name, holiday_date, holiday_type,
			   is_optional, year, description, status
		FROM company_holidays
		WHERE holiday_date BETWEEN $1 AND $2 AND status = 'A'
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		var status string
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Type,
			&h.IsOptional, &h.Year, &h.Description, &status,
		); err != nil {
			return nil, err
		}
		h.Status = holiday.HolidayStatus(status)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

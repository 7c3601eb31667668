package holiday

import (
	"context"

	"github.com/erp-suite/leave-backend-go/internal/domain/holiday"
	"github.com/erp-suite/leave-backend-go/internal/pkg/validator"
)

type Service struct {
	holidays holiday.HolidayRepository
}

func NewService(holidayRepository holiday.HolidayRepository) *Service {
	return &Service{holidays: holidayRepository}
}

type CreateHolidayRequest struct {
	Name        string  `json:"holiday_name"`
	Date        string  `json:"holiday_date"`
	Type        *string `json:"holiday_type,omitempty"`
	IsOptional  bool    `json:"is_optional"`
	Description *string `json:"description,omitempty"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "holiday_name", Message: "Holiday name is required"})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "Holiday date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	return s.holidays.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        req.Type,
		IsOptional:  req.IsOptional,
		Description: req.Description,
		Status:      holiday.HolidayStatusActive,
	})
}

func (s *Service) GetByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.holidays.GetByYear(ctx, year)
}

package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"

	availabilityService "github.com/lucerocare/LRM-BookingService/internal/service/availability"
)

// UseCase use case календарной сетки месяца
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения открытых дней месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	days, err := uc.availability.GetMonth(ctx, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, availabilityService.ErrInvalidMonth) {
			uc.logger.Warn("GetMonthAvailability: invalid month %04d-%02d", req.Year, req.Month)
			return nil, ErrInvalidMonth
		}
		uc.logger.Error("GetMonthAvailability: failed to get month %04d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to get month: %v", ErrInternal, err)
	}

	result := make([]DayHours, 0, len(days))
	for day, hours := range days {
		result = append(result, DayHours{Day: day, Hours: hours.Sorted()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  result,
	}, nil
}

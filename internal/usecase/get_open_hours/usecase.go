package get_open_hours

import (
	"context"
	"fmt"
	"time"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// UseCase use case раскладки часов одного дня
// Занятые часы считаются по активным бронированиям, а не по записи дня:
// запись дня показывает только еще не потребленный остаток
type UseCase struct {
	availability AvailabilityStore
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityStore, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения раскладки часов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	if !domain.IsValidDate(req.Year, req.Month, req.Day) {
		uc.logger.Warn("GetOpenHours: invalid date %04d-%02d-%02d", req.Year, req.Month, req.Day)
		return nil, ErrInvalidDate
	}

	// 2. Получаем открытые часы дня (отсутствие записи - пустой набор)
	open, err := uc.availability.GetDay(ctx, req.Year, req.Month, req.Day)
	if err != nil {
		uc.logger.Error("GetOpenHours: failed to get open hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get open hours: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования дня
	date := time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, time.UTC)
	bookings, err := uc.bookingRepo.GetByDay(ctx, date, false)
	if err != nil {
		uc.logger.Error("GetOpenHours: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Объединяем занятые часы всех активных бронирований
	taken := domain.NewHourSet()
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		taken = taken.Union(b.OccupiedHours())
	}

	// 5. Доступные для выбора часы: открытые минус занятые
	selectable := open.Subtract(taken)

	return &Response{
		Year:       req.Year,
		Month:      req.Month,
		Day:        req.Day,
		Open:       open.Sorted(),
		Taken:      taken.Sorted(),
		Selectable: selectable.Sorted(),
	}, nil
}

package confirm_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FamilyID == uuid.Nil {
		return fmt.Errorf("%w: familyID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Hours) == 0 {
		return fmt.Errorf("%w: at least one hour is required", ErrInvalidHours)
	}

	seen := make(map[int]struct{}, len(req.Hours))
	for _, h := range req.Hours {
		if !domain.IsValidHour(h) {
			return fmt.Errorf("%w: hour %d is out of range", ErrInvalidHours, h)
		}
		if _, ok := seen[h]; ok {
			return fmt.Errorf("%w: hour %d is duplicated", ErrInvalidHours, h)
		}
		seen[h] = struct{}{}
	}

	if req.Address != nil && len(*req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата корректна и не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if !domain.IsValidDate(date.Year(), int(date.Month()), date.Day()) {
		return ErrInvalidDate
	}

	if isDateInPast(date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return nil
}

// takenHours объединяет часы всех активных бронирований дня
// Для старых записей без набора токенов используется окно start_at..end_at
func takenHours(bookings []*domain.Booking) domain.HourSet {
	taken := domain.NewHourSet()

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		taken = taken.Union(b.OccupiedHours())
	}

	return taken
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

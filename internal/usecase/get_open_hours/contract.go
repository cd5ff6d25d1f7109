package get_open_hours

import (
	"context"
	"time"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// AvailabilityStore интерфейс календаря открытых часов
type AvailabilityStore interface {
	GetDay(ctx context.Context, year, month, day int) (domain.HourSet, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDay(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

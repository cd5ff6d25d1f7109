package get_month_availability

import (
	"context"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// AvailabilityService интерфейс сервиса календаря открытых часов
type AvailabilityService interface {
	GetMonth(ctx context.Context, year, month int) (map[int]domain.HourSet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

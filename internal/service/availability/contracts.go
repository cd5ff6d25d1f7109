package availability

import (
	"context"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря открытых часов
type AvailabilityRepository interface {
	GetDay(ctx context.Context, year, month, day int) (*domain.AvailabilityDay, error)
	GetMonth(ctx context.Context, year, month int) ([]*domain.AvailabilityDay, error)
	Insert(ctx context.Context, day *domain.AvailabilityDay) error
	UpdateHours(ctx context.Context, year, month, day int, hours domain.HourSet) error
	Delete(ctx context.Context, year, month, day int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

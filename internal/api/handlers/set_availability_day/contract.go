package set_availability_day

import (
	"context"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

type AvailabilityService interface {
	SetDayHours(ctx context.Context, year, month, day int, hours domain.HourSet) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

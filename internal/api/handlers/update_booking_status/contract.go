package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string, requester domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest, requester domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

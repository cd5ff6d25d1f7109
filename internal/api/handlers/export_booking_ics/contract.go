package export_booking_ics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id uuid.UUID, requester domain.Identity) (*models.BookingResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

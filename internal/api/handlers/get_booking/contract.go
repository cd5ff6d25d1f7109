package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id uuid.UUID, requester domain.Identity) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_family_bookings

import (
	"context"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetFamilyBookings(ctx context.Context, req *models.GetFamilyBookingsRequest, requester domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

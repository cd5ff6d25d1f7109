package get_me

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/service/auth/models"
)

type AuthService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

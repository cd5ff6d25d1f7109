package login

import (
	"time"

	authModels "github.com/lucerocare/LRM-BookingService/internal/service/auth/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse HTTP response model профиля
type ProfileResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	City     string  `json:"city"`
}

// AuthResponse HTTP response model с токеном и профилем
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expiresAt"`
	Profile   ProfileResponse `json:"profile"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *authModels.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Profile: ProfileResponse{
			ID:       resp.Profile.ID.String(),
			Email:    resp.Profile.Email,
			Role:     resp.Profile.Role,
			FullName: resp.Profile.FullName,
			Phone:    resp.Profile.Phone,
			City:     resp.Profile.City,
		},
	}
}

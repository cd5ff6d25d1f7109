package register

import (
	"time"

	authModels "github.com/lucerocare/LRM-BookingService/internal/service/auth/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	City     string  `json:"city"`
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *authModels.RegisterRequest {
	return &authModels.RegisterRequest{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
		City:     r.City,
	}
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

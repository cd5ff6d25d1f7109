package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию нового профиля
type RegisterRequest struct {
	Email    string
	Password string
	FullName *string
	Phone    *string
	City     string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// Response модели

// ProfileResponse профиль в ответе сервиса (без хеша пароля)
type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	FullName *string   `json:"fullName,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	City     string    `json:"city"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse результат регистрации или входа
type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Profile   *ProfileResponse `json:"profile"`
}

// FromDomainProfile конвертирует domain.Profile в ответ сервиса
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Role:      string(p.Role),
		FullName:  p.FullName,
		Phone:     p.Phone,
		City:      p.City,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

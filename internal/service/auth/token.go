package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// claims полезная нагрузка сессионного токена
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// issueToken выпускает подписанный HS256 токен для профиля
func (s *Service) issueToken(profile *domain.Profile, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: issueToken - sign token: %v", ErrInternal, err)
	}

	return signed, expiresAt, nil
}

// ParseToken проверяет подпись и срок токена и возвращает идентичность вызывающего
func (s *Service) ParseToken(tokenString string) (domain.Identity, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{
		UserID: userID,
		Role:   domain.ParseRole(c.Role),
	}, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	profileRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/profile"
	"github.com/lucerocare/LRM-BookingService/internal/service/auth/models"
)

const minPasswordLength = 8

// Service сервис аутентификации: регистрация, вход, сессионные токены
type Service struct {
	profileRepo  ProfileRepository
	timeProvider TimeProvider
	logger       Logger

	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	profileRepo ProfileRepository,
	timeProvider TimeProvider,
	logger Logger,
	jwtSecret string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		timeProvider: timeProvider,
		logger:       logger,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}
}

// Register регистрирует новый профиль семьи и выпускает сессионный токен
// Новые профили всегда получают роль family; роли admin/caregiver
// назначаются напрямую в БД
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegistration(email, req.Password, req.FullName); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleFamily,
		FullName:     req.FullName,
		Phone:        req.Phone,
		City:         req.City,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, profileRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, expiresAt, err := s.issueToken(profile, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: created profile id=%s email=%s", profile.ID, email)
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   models.FromDomainProfile(profile),
	}, nil
}

// Login проверяет учетные данные и выпускает сессионный токен
// Несуществующий email и неверный пароль дают одну и ту же ошибку
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(profile, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: successful login for profile id=%s", profile.ID)
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   models.FromDomainProfile(profile),
	}, nil
}

// GetProfile возвращает профиль по идентификатору из токена
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile id=%s not found", id)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetProfile: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

func validateRegistration(email, password string, fullName *string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if fullName != nil && len(*fullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: full name exceeds %d characters", ErrInvalidInput, domain.MaxFullNameLength)
	}
	return nil
}

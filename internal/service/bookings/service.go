package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	bookingRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/booking"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирования живет в usecase confirm_booking
type Service struct {
	bookingRepo  BookingRepository
	availability AvailabilityStore
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	availability AvailabilityStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Семья видит только свои бронирования; admin/caregiver - любые
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, requester domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, requester.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkBookingAccess(booking, requester); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", requester.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetFamilyBookings получает историю бронирований семьи
// Семья видит только свою историю; admin/caregiver - любую
func (s *Service) GetFamilyBookings(ctx context.Context, req *models.GetFamilyBookingsRequest, requester domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetFamilyBookings: fetching bookings for family=%s, requester=%s", req.FamilyID, requester.UserID)

	if req.FamilyID != requester.UserID && !requester.Role.CanManageBookings() {
		s.logger.Warn("GetFamilyBookings: access denied for user=%s to family=%s", requester.UserID, req.FamilyID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{FamilyID: &req.FamilyID, IncludeInactive: true}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetFamilyBookings: invalid status=%s for family=%s", *req.Status, req.FamilyID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
		filter.IncludeInactive = !domain.IsActiveStatus(status)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFamilyBookings: repository error for family=%s: %v", req.FamilyID, err)
		return nil, fmt.Errorf("%w: GetFamilyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFamilyBookings: fetched %d bookings for family=%s", len(bookings), req.FamilyID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает бронирования с фильтрацией по периоду и статусу
// Доступно только admin/caregiver
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest, requester domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: requester=%s role=%s", requester.UserID, requester.Role)

	if !requester.Role.CanManageBookings() {
		s.logger.Warn("GetAllBookings: access denied for user=%s", requester.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и возвращает его часы в календарь доступности
// Отмена и возврат часов выполняются в одной сериализуемой транзакции
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest, requester domain.Identity) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, requester.UserID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := checkBookingAccess(booking, requester); err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Возвращаем часы отмененного бронирования в запись дня
		date := booking.BookingDate
		if err := s.availability.RestoreHours(txCtx, date.Year(), int(date.Month()), date.Day(), booking.OccupiedHours()); err != nil {
			return fmt.Errorf("%w: Cancel - restore hours: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (подтверждение, завершение)
// Доступно только admin/caregiver; для отмены используется Cancel,
// который дополнительно возвращает часы в календарь
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string, requester domain.Identity) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by user=%s", bookingID, status, requester.UserID)

	if !requester.Role.CanManageBookings() {
		s.logger.Warn("UpdateStatus: access denied for user=%s", requester.UserID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(status)
	if err != nil || newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", status, bookingID)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%s is cancelled, status is final", bookingID)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s updated to status=%s", bookingID, newStatus)
	return nil
}

// checkBookingAccess проверяет доступ к бронированию:
// владелец-семья или роль с правом управления бронированиями
func checkBookingAccess(booking *domain.Booking, requester domain.Identity) error {
	if booking.FamilyID == requester.UserID {
		return nil
	}
	if requester.Role.CanManageBookings() {
		return nil
	}
	return ErrAccessDenied
}

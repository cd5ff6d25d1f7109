package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	serviceRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/service"
)

// UseCase use case подтверждения бронирования
// Проверка открытых часов, проверка занятости и списание часов выполняются
// одной сериализуемой транзакцией - параллельные подтверждения на
// пересекающиеся часы не могут пройти оба
type UseCase struct {
	bookingRepo  BookingRepository
	availability AvailabilityStore
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	caregiverID uuid.UUID
	pricing     Pricing
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityStore,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
	caregiverID uuid.UUID,
	pricing Pricing,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		caregiverID:  caregiverID,
		pricing:      pricing,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: family=%s, service=%s, date=%s, hours=%v",
		req.FamilyID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Hours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("ConfirmBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу из каталога (вне транзакции - каталог не участвует в гонке)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("ConfirmBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("ConfirmBooking: service id=%s is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Определяем тариф: рядом с метро или стандартный
	rate := uc.pricing.StandardRate
	if req.IsNearMetro {
		rate = uc.pricing.NearMetroRate
	}

	requested := domain.NewHourSet(req.Hours...)
	year, month, day := req.Date.Year(), int(req.Date.Month()), req.Date.Day()

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем открытые часы дня с блокировкой (FOR UPDATE)
		open, err := uc.availability.GetDay(txCtx, year, month, day)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get open hours: %v", err)
			return fmt.Errorf("%w: failed to get open hours: %v", ErrInternal, err)
		}

		// 5.2. На дату без открытых часов бронировать нельзя
		if open.IsEmpty() {
			uc.logger.Warn("ConfirmBooking: no open hours on %s", req.Date.Format(domain.DateFormat))
			return ErrDayNotAvailable
		}

		// 5.3. Каждый запрошенный час должен входить в открытые
		if !open.ContainsAll(requested) {
			uc.logger.Warn("ConfirmBooking: hours %s are not fully open on %s (open: %s)",
				requested.Encode(), req.Date.Format(domain.DateFormat), open.Encode())
			return ErrHoursNotOpen
		}

		// 5.4. Получаем активные бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDay(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Запрошенные часы не должны пересекаться с занятыми
		taken := takenHours(bookings)
		if requested.Intersects(taken) {
			uc.logger.Warn("ConfirmBooking: hours %s overlap taken hours %s on %s",
				requested.Encode(), taken.Encode(), req.Date.Format(domain.DateFormat))
			return ErrHoursTaken
		}

		// 5.6. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			ID:          uuid.New(),
			FamilyID:    req.FamilyID,
			CaregiverID: uc.caregiverID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			StartAt:     hourOnDate(req.Date, requested.Min()),
			EndAt:       hourOnDate(req.Date, requested.Max()+1),
			Hours:       requested,
			IsNearMetro: req.IsNearMetro,
			RateApplied: rate,
			Status:      domain.StatusPending,
			// Денормализация данных услуги
			ServiceTitle:   service.Title,
			PriceEstimated: rate * float64(requested.Len()),
			// Адрес и заметки
			Address: req.Address,
			Notes:   req.Notes,
		}

		// 5.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 5.8. Списываем потребленные часы из записи дня
		if err := uc.availability.ReleaseHours(txCtx, year, month, day, requested); err != nil {
			uc.logger.Error("ConfirmBooking: failed to release hours: %v", err)
			return fmt.Errorf("%w: failed to release hours: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: successfully created booking id=%s, price=%.2f",
		result.ID, result.PriceEstimated)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		FamilyID:       result.FamilyID,
		CaregiverID:    result.CaregiverID,
		ServiceID:      result.ServiceID,
		BookingDate:    result.BookingDate,
		StartAt:        result.StartAt,
		EndAt:          result.EndAt,
		Hours:          result.Hours.Sorted(),
		Status:         string(result.Status),
		ServiceTitle:   result.ServiceTitle,
		IsNearMetro:    result.IsNearMetro,
		RateApplied:    result.RateApplied,
		PriceEstimated: result.PriceEstimated,
		Address:        result.Address,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// hourOnDate возвращает момент времени: указанный час на дате бронирования
func hourOnDate(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
}

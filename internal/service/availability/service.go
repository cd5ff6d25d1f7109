package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	availabilityRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/availability"
)

// Service сервис календаря открытых часов
// Инвариант: запись дня существует только пока набор часов непуст;
// пустой набор означает удаление записи, а не сохранение пустой строки
type Service struct {
	repo   AvailabilityRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetMonth возвращает открытые часы месяца в виде отображения день -> часы
// Возвращает пустое отображение, если открытых дней нет
func (s *Service) GetMonth(ctx context.Context, year, month int) (map[int]domain.HourSet, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	days, err := s.repo.GetMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("GetMonth: repository error for %04d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: GetMonth - repository error: %v", ErrInternal, err)
	}

	result := make(map[int]domain.HourSet, len(days))
	for _, d := range days {
		result[d.Day] = d.Hours
	}

	return result, nil
}

// GetDay возвращает открытые часы одного дня
// Отсутствие записи не является ошибкой - возвращается пустой набор
func (s *Service) GetDay(ctx context.Context, year, month, day int) (domain.HourSet, error) {
	if !domain.IsValidDate(year, month, day) {
		return nil, ErrInvalidDate
	}

	record, err := s.repo.GetDay(ctx, year, month, day)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDayNotFound) {
			return domain.NewHourSet(), nil
		}
		s.logger.Error("GetDay: repository error for %04d-%02d-%02d: %v", year, month, day, err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	return record.Hours, nil
}

// SetDayHours полностью заменяет набор часов дня (replace, не merge)
// Правила:
//   - пустой набор при существующей записи удаляет запись
//   - пустой набор без записи - no-op
//   - совпадающий набор не порождает повторной записи (compare-before-write)
//   - иначе запись обновляется или создается
func (s *Service) SetDayHours(ctx context.Context, year, month, day int, hours domain.HourSet) error {
	if !domain.IsValidDate(year, month, day) {
		return ErrInvalidDate
	}
	for h := range hours {
		if !domain.IsValidHour(h) {
			return ErrInvalidHours
		}
	}

	existing, err := s.repo.GetDay(ctx, year, month, day)
	if err != nil && !errors.Is(err, availabilityRepo.ErrDayNotFound) {
		s.logger.Error("SetDayHours: failed to read %04d-%02d-%02d: %v", year, month, day, err)
		return fmt.Errorf("%w: SetDayHours - read current record: %v", ErrInternal, err)
	}

	if hours.IsEmpty() {
		if existing == nil {
			// Нечего удалять
			return nil
		}
		if err := s.repo.Delete(ctx, year, month, day); err != nil {
			s.logger.Error("SetDayHours: failed to delete %04d-%02d-%02d: %v", year, month, day, err)
			return fmt.Errorf("%w: SetDayHours - delete record: %v", ErrInternal, err)
		}
		s.logger.Info("SetDayHours: deleted %04d-%02d-%02d (empty hour set)", year, month, day)
		return nil
	}

	if existing != nil {
		if existing.Hours.Equal(hours) {
			s.logger.Info("SetDayHours: no changes for %04d-%02d-%02d", year, month, day)
			return nil
		}
		if err := s.repo.UpdateHours(ctx, year, month, day, hours); err != nil {
			s.logger.Error("SetDayHours: failed to update %04d-%02d-%02d: %v", year, month, day, err)
			return fmt.Errorf("%w: SetDayHours - update record: %v", ErrInternal, err)
		}
		s.logger.Info("SetDayHours: updated %04d-%02d-%02d hours=%s", year, month, day, hours.Encode())
		return nil
	}

	record := &domain.AvailabilityDay{Year: year, Month: month, Day: day, Hours: hours}
	if err := s.repo.Insert(ctx, record); err != nil {
		s.logger.Error("SetDayHours: failed to insert %04d-%02d-%02d: %v", year, month, day, err)
		return fmt.Errorf("%w: SetDayHours - insert record: %v", ErrInternal, err)
	}
	s.logger.Info("SetDayHours: created %04d-%02d-%02d hours=%s", year, month, day, hours.Encode())

	return nil
}

// ReleaseHours вычитает потребленные часы из записи дня
// Повторное вычитание уже отсутствующих часов - no-op (идемпотентность);
// опустевшая запись удаляется
func (s *Service) ReleaseHours(ctx context.Context, year, month, day int, consumed domain.HourSet) error {
	if !domain.IsValidDate(year, month, day) {
		return ErrInvalidDate
	}
	if consumed.IsEmpty() {
		return nil
	}

	current, err := s.GetDay(ctx, year, month, day)
	if err != nil {
		return err
	}
	if current.IsEmpty() {
		// Запись уже отсутствует - вычитать нечего
		return nil
	}

	remainder := current.Subtract(consumed)
	if remainder.Equal(current) {
		return nil
	}

	return s.SetDayHours(ctx, year, month, day, remainder)
}

// RestoreHours возвращает часы в запись дня (отмена бронирования)
func (s *Service) RestoreHours(ctx context.Context, year, month, day int, restored domain.HourSet) error {
	if !domain.IsValidDate(year, month, day) {
		return ErrInvalidDate
	}
	if restored.IsEmpty() {
		return nil
	}

	current, err := s.GetDay(ctx, year, month, day)
	if err != nil {
		return err
	}

	return s.SetDayHours(ctx, year, month, day, current.Union(restored))
}

func validateMonth(year, month int) error {
	if year < domain.MinYear || year > domain.MaxYear || month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

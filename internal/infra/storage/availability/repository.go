package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/pkg/dbmetrics"
	"github.com/lucerocare/LRM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с календарем открытых часов
// Запись существует только пока набор часов непуст
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDay получает запись одного дня
// Внутри транзакции читает с блокировкой FOR UPDATE - запись дня участвует
// в check-then-act сценарии подтверждения бронирования
func (r *Repository) GetDay(ctx context.Context, year, month, day int) (*domain.AvailabilityDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"year",
		"month",
		"day",
		"hours",
		"created_at",
		"updated_at",
	).
		From("availability_days").
		Where(squirrel.Eq{"year": year, "month": month, "day": day})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDay - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDay(executor.QueryRowContext(ctx, query, args...))
}

// GetMonth получает все записи месяца
// Возвращает пустой слайс, если открытых дней нет
func (r *Repository) GetMonth(ctx context.Context, year, month int) ([]*domain.AvailabilityDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"year",
		"month",
		"day",
		"hours",
		"created_at",
		"updated_at",
	).
		From("availability_days").
		Where(squirrel.Eq{"year": year, "month": month}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.AvailabilityDay, 0)

	for rows.Next() {
		var d domain.AvailabilityDay
		var hours string
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&d.Year, &d.Month, &d.Day, &hours, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetMonth - scan row: %v", ErrScanRow, err)
		}

		d.Hours = domain.ParseHourSet(hours)
		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time

		days = append(days, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMonth - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// Insert создает запись дня
// Набор часов должен быть непустым - пустой набор означает отсутствие записи
func (r *Repository) Insert(ctx context.Context, day *domain.AvailabilityDay) error {
	if day.Hours.IsEmpty() {
		return ErrEmptyHours
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_days").
		Columns("year", "month", "day", "hours").
		Values(day.Year, day.Month, day.Day, day.Hours.Encode()).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return nil
}

// UpdateHours полностью заменяет набор часов существующей записи
func (r *Repository) UpdateHours(ctx context.Context, year, month, day int, hours domain.HourSet) error {
	if hours.IsEmpty() {
		return ErrEmptyHours
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_days").
		Set("hours", hours.Encode()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"year": year, "month": month, "day": day}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// Delete удаляет запись дня
func (r *Repository) Delete(ctx context.Context, year, month, day int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_days").
		Where(squirrel.Eq{"year": year, "month": month, "day": day}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// scanDay сканирует одну запись дня
func (r *Repository) scanDay(row *sql.Row) (*domain.AvailabilityDay, error) {
	var d domain.AvailabilityDay
	var hours string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&d.Year, &d.Month, &d.Day, &hours, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDay - scan row: %v", ErrScanRow, err)
	}

	d.Hours = domain.ParseHourSet(hours)
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

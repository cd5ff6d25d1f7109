package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetFamilyBookingsRequest запрос на получение бронирований семьи
type GetFamilyBookingsRequest struct {
	FamilyID uuid.UUID `json:"familyId"`
	Status   *string   `json:"status,omitempty"`
}

// GetAllBookingsRequest запрос на получение всех бронирований (админ)
type GetAllBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAllBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	FamilyID    uuid.UUID `json:"familyId"`
	CaregiverID uuid.UUID `json:"caregiverId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	BookingDate string    `json:"bookingDate"` // "2026-09-15"
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Hours       []int     `json:"hours"`
	HoursCount  int       `json:"hoursCount"`
	Status      string    `json:"status"`

	// Денормализованные данные
	ServiceTitle   string  `json:"serviceTitle"`
	IsNearMetro    bool    `json:"isNearMetro"`
	RateApplied    float64 `json:"rateApplied"`
	PriceEstimated float64 `json:"priceEstimated"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Часы берутся из OccupiedHours: для старых записей без набора токенов
// они выводятся из окна start_at..end_at
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	occupied := b.OccupiedHours()

	resp := &BookingResponse{
		ID:                 b.ID,
		FamilyID:           b.FamilyID,
		CaregiverID:        b.CaregiverID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartAt:            b.StartAt,
		EndAt:              b.EndAt,
		Hours:              occupied.Sorted(),
		HoursCount:         occupied.Len(),
		Status:             string(b.Status),
		ServiceTitle:       b.ServiceTitle,
		IsNearMetro:        b.IsNearMetro,
		RateApplied:        b.RateApplied,
		PriceEstimated:     b.PriceEstimated,
		Address:            b.Address,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

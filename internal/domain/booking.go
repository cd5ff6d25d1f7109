package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one family's reservation for a set of hours on one day
type Booking struct {
	ID          uuid.UUID
	FamilyID    uuid.UUID
	CaregiverID uuid.UUID
	ServiceID   uuid.UUID

	BookingDate time.Time
	// StartAt/EndAt form a display-only bounding window over the selected
	// hours: earliest hour to latest hour + 1. When the selected hours are
	// not contiguous the window overstates the occupied time; Hours is the
	// authoritative occupancy record.
	StartAt time.Time
	EndAt   time.Time
	Hours   HourSet

	IsNearMetro    bool
	RateApplied    float64
	PriceEstimated float64
	Status         BookingStatus

	// Denormalized data for history
	ServiceTitle string
	Address      *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its hours
func (b *Booking) IsActive() bool {
	return IsActiveStatus(b.Status)
}

// IsActiveStatus reports whether bookings in status s occupy hours on their day
func IsActiveStatus(s BookingStatus) bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiedHours returns the hours this booking takes on its day.
// Prefers the explicit hour-token set; bookings persisted by older
// clients may carry an empty set, in which case whole-hour coverage of
// [StartAt.Hour(), EndAt.Hour()) is derived from the bounding window.
func (b *Booking) OccupiedHours() HourSet {
	if !b.Hours.IsEmpty() {
		return b.Hours
	}

	taken := make(HourSet)
	for h := b.StartAt.Hour(); h < b.EndAt.Hour(); h++ {
		if IsValidHour(h) {
			taken[h] = struct{}{}
		}
	}
	return taken
}

// IsValidStatus reports whether s is a member of the status enum
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	FamilyID        *uuid.UUID     // Фильтр по семье (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

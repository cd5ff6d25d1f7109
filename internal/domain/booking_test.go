package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_OccupiedHoursPrefersTokenSet(t *testing.T) {
	b := &Booking{
		StartAt: time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC),
		Hours:   NewHourSet(16, 19), // non-contiguous selection
	}

	assert.Equal(t, []int{16, 19}, b.OccupiedHours().Sorted())
}

func TestBooking_OccupiedHoursFallsBackToWindow(t *testing.T) {
	// Legacy row without hour tokens: whole-hour coverage of the window.
	b := &Booking{
		StartAt: time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
		Hours:   NewHourSet(),
	}

	assert.Equal(t, []int{16, 17, 18}, b.OccupiedHours().Sorted())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestIsActiveStatus_MatchesStatusLists(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, IsActiveStatus(s), "status %s", s)
	}
	for _, s := range InactiveStatuses {
		assert.False(t, IsActiveStatus(s), "status %s", s)
	}
	assert.False(t, IsActiveStatus(BookingStatus("unknown")))
}

func TestParseRole_LegacySpellings(t *testing.T) {
	assert.Equal(t, RoleFamily, ParseRole("familia"))
	assert.Equal(t, RoleCaregiver, ParseRole("cuidadora"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleGuest, ParseRole("whatever"))
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageAvailability())
	assert.True(t, RoleCaregiver.CanManageBookings())
	assert.False(t, RoleFamily.CanManageAvailability())
	assert.False(t, RoleGuest.CanManageBookings())
}

package get_open_hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

type mockAvailability struct {
	open domain.HourSet
}

func (m *mockAvailability) GetDay(_ context.Context, _, _, _ int) (domain.HourSet, error) {
	return m.open, nil
}

type mockBookingRepo struct {
	bookings []*domain.Booking
}

func (m *mockBookingRepo) GetByDay(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return m.bookings, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_SelectableIsOpenMinusTaken(t *testing.T) {
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18, 19)}
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{Status: domain.StatusPending, Hours: domain.NewHourSet(17, 18)},
	}}
	uc := NewUseCase(availability, bookingRepo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 9, Day: 15})

	require.NoError(t, err)
	assert.Equal(t, []int{16, 17, 18, 19}, resp.Open)
	assert.Equal(t, []int{17, 18}, resp.Taken)
	assert.Equal(t, []int{16, 19}, resp.Selectable)
}

func TestExecute_CancelledBookingsDoNotOccupy(t *testing.T) {
	availability := &mockAvailability{open: domain.NewHourSet(16, 17)}
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{Status: domain.StatusCancelled, Hours: domain.NewHourSet(16, 17)},
	}}
	uc := NewUseCase(availability, bookingRepo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 9, Day: 15})

	require.NoError(t, err)
	assert.Empty(t, resp.Taken)
	assert.Equal(t, []int{16, 17}, resp.Selectable)
}

func TestExecute_MissingDayIsAllEmpty(t *testing.T) {
	uc := NewUseCase(&mockAvailability{open: domain.NewHourSet()}, &mockBookingRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 9, Day: 15})

	require.NoError(t, err)
	assert.Empty(t, resp.Open)
	assert.Empty(t, resp.Taken)
	assert.Empty(t, resp.Selectable)
}

func TestExecute_RejectsInvalidDate(t *testing.T) {
	uc := NewUseCase(&mockAvailability{}, &mockBookingRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 2, Day: 30})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

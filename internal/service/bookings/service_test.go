package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	bookingRepoPkg "github.com/lucerocare/LRM-BookingService/internal/infra/storage/booking"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
	"github.com/lucerocare/LRM-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	cancelledID   *uuid.UUID
	cancelReason  string
	updatedStatus *domain.BookingStatus
	lastFilter    domain.BookingsFilter
}

func (m *mockBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, bookingRepoPkg.ErrBookingNotFound
	}
	return m.booking, nil
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	return m.list, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	m.updatedStatus = &status
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id uuid.UUID, reason string) error {
	m.cancelledID = &id
	m.cancelReason = reason
	return nil
}

type mockAvailability struct {
	restored []domain.HourSet
}

func (m *mockAvailability) RestoreHours(_ context.Context, _, _, _ int, restored domain.HourSet) error {
	m.restored = append(m.restored, restored)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	familyID  = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	otherID   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	bookingID = uuid.MustParse("dddddddd-0000-0000-0000-000000000001")
)

func familyIdentity() domain.Identity {
	return domain.Identity{UserID: familyID, Role: domain.RoleFamily}
}

func adminIdentity() domain.Identity {
	return domain.Identity{UserID: otherID, Role: domain.RoleAdmin}
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          bookingID,
		FamilyID:    familyID,
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartAt:     time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
		Hours:       domain.NewHourSet(16, 17, 18),
		Status:      domain.StatusPending,
	}
}

func newTestService(repo *mockBookingRepo, availability *mockAvailability) *Service {
	return NewService(repo, availability, passthroughTxManager{}, noopLogger{})
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	resp, err := svc.GetByID(context.Background(), bookingID, familyIdentity())

	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, 3, resp.HoursCount)
}

func TestGetByID_LegacyBookingDerivesHoursFromWindow(t *testing.T) {
	// Старая запись без токенов часов: часы выводятся из окна 16:00-19:00
	booking := pendingBooking()
	booking.Hours = domain.NewHourSet()
	repo := &mockBookingRepo{booking: booking}
	svc := newTestService(repo, &mockAvailability{})

	resp, err := svc.GetByID(context.Background(), bookingID, familyIdentity())

	require.NoError(t, err)
	assert.Equal(t, []int{16, 17, 18}, resp.Hours)
	assert.Equal(t, 3, resp.HoursCount)
}

func TestGetByID_StrangerIsDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	_, err := svc.GetByID(context.Background(), bookingID,
		domain.Identity{UserID: otherID, Role: domain.RoleFamily})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ManagerSeesAnyBooking(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	_, err := svc.GetByID(context.Background(), bookingID, adminIdentity())

	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockBookingRepo{}, &mockAvailability{})

	_, err := svc.GetByID(context.Background(), bookingID, adminIdentity())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetFamilyBookings_OtherFamilyIsDenied(t *testing.T) {
	svc := newTestService(&mockBookingRepo{}, &mockAvailability{})

	_, err := svc.GetFamilyBookings(context.Background(),
		&models.GetFamilyBookingsRequest{FamilyID: otherID}, familyIdentity())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetFamilyBookings_FiltersByFamily(t *testing.T) {
	repo := &mockBookingRepo{list: []*domain.Booking{pendingBooking()}}
	svc := newTestService(repo, &mockAvailability{})

	resp, err := svc.GetFamilyBookings(context.Background(),
		&models.GetFamilyBookingsRequest{FamilyID: familyID}, familyIdentity())

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.FamilyID)
	assert.Equal(t, familyID, *repo.lastFilter.FamilyID)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetAllBookings_FamilyIsDenied(t *testing.T) {
	svc := newTestService(&mockBookingRepo{}, &mockAvailability{})

	_, err := svc.GetAllBookings(context.Background(), &models.GetAllBookingsRequest{}, familyIdentity())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_RestoresHoursToCalendar(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	availability := &mockAvailability{}
	svc := newTestService(repo, availability)

	err := svc.Cancel(context.Background(), bookingID,
		&models.CancelBookingRequest{CancellationReason: "cambio de planes"}, familyIdentity())

	require.NoError(t, err)
	require.NotNil(t, repo.cancelledID)
	assert.Equal(t, bookingID, *repo.cancelledID)
	assert.Equal(t, "cambio de planes", repo.cancelReason)

	require.Len(t, availability.restored, 1)
	assert.Equal(t, "16-17-18", availability.restored[0].Encode())
}

func TestCancel_CompletedBookingCannotBeCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCompleted
	repo := &mockBookingRepo{booking: booking}
	availability := &mockAvailability{}
	svc := newTestService(repo, availability)

	err := svc.Cancel(context.Background(), bookingID, &models.CancelBookingRequest{}, familyIdentity())

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Nil(t, repo.cancelledID)
	assert.Empty(t, availability.restored)
}

func TestCancel_StrangerIsDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	err := svc.Cancel(context.Background(), bookingID, &models.CancelBookingRequest{},
		domain.Identity{UserID: otherID, Role: domain.RoleFamily})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_FamilyIsDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	err := svc.UpdateStatus(context.Background(), bookingID, "confirmed", familyIdentity())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ManagerConfirms(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	err := svc.UpdateStatus(context.Background(), bookingID, "confirmed", adminIdentity())

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestUpdateStatus_CancelledViaStatusIsRejected(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockAvailability{})

	// Отмена идет через Cancel, который возвращает часы в календарь
	err := svc.UpdateStatus(context.Background(), bookingID, "cancelled", adminIdentity())

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_CancelledBookingIsFinal(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = ptr.Ptr("cambio de planes")
	repo := &mockBookingRepo{booking: booking}
	svc := newTestService(repo, &mockAvailability{})

	err := svc.UpdateStatus(context.Background(), bookingID, "confirmed", adminIdentity())

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

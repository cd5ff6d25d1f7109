package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/pkg/ptr"
)

// Моки зависимостей

type mockBookingRepo struct {
	created  []*domain.Booking
	byDay    []*domain.Booking
	byDayErr error
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	m.created = append(m.created, b)
	return b, nil
}

func (m *mockBookingRepo) GetByDay(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return m.byDay, m.byDayErr
}

type mockAvailability struct {
	open     domain.HourSet
	released []domain.HourSet
}

func (m *mockAvailability) GetDay(_ context.Context, _, _, _ int) (domain.HourSet, error) {
	return m.open, nil
}

func (m *mockAvailability) ReleaseHours(_ context.Context, _, _, _ int, consumed domain.HourSet) error {
	m.released = append(m.released, consumed)
	return nil
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Service, error) {
	return m.service, m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Помощники

var (
	testFamilyID    = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	testCaregiverID = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001")
	testServiceID   = uuid.MustParse("cccccccc-0000-0000-0000-000000000001")
)

func activeService() *domain.Service {
	return &domain.Service{
		ID:           testServiceID,
		Title:        "Canguro tardes",
		BaseRateHour: 10.0,
		IsActive:     true,
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, availability *mockAvailability, serviceRepo *mockServiceRepo) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		availability,
		serviceRepo,
		passthroughTxManager{},
		noopLogger{},
		testCaregiverID,
		Pricing{NearMetroRate: 10.0, StandardRate: 12.0},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		FamilyID:    testFamilyID,
		ServiceID:   testServiceID,
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Hours:       []int{16, 17, 18},
		IsNearMetro: true,
	}
}

// Тесты

func TestExecute_CreatesBookingAndConsumesHours(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	availability := &mockAvailability{open: domain.NewHourSet(15, 16, 17, 18, 19)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, bookingRepo.created, 1)

	created := bookingRepo.created[0]
	assert.Equal(t, testFamilyID, created.FamilyID)
	assert.Equal(t, testCaregiverID, created.CaregiverID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "16-17-18", created.Hours.Encode())
	assert.Equal(t, "Canguro tardes", created.ServiceTitle)

	// Рядом с метро: 10.0 за час, 3 часа
	assert.Equal(t, 10.0, created.RateApplied)
	assert.Equal(t, 30.0, created.PriceEstimated)

	// Окно занятости: 16:00 - 19:00
	assert.Equal(t, 16, created.StartAt.Hour())
	assert.Equal(t, 19, created.EndAt.Hour())

	// Часы списаны из записи дня
	require.Len(t, availability.released, 1)
	assert.Equal(t, "16-17-18", availability.released[0].Encode())

	assert.Equal(t, []int{16, 17, 18}, resp.Hours)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_StandardRateWhenNotNearMetro(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	req := validRequest()
	req.IsNearMetro = false

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, 12.0, bookingRepo.created[0].RateApplied)
	assert.Equal(t, 36.0, bookingRepo.created[0].PriceEstimated)
}

func TestExecute_RejectsHoursOutsideOpenSet(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrHoursNotOpen)
	assert.Empty(t, bookingRepo.created)
	assert.Empty(t, availability.released)
}

func TestExecute_RejectsDayWithoutOpenHours(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	availability := &mockAvailability{open: domain.NewHourSet()}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDayNotAvailable)
	assert.Empty(t, bookingRepo.created)
}

func TestExecute_RejectsOverlapWithActiveBooking(t *testing.T) {
	taken := &domain.Booking{
		Status: domain.StatusPending,
		Hours:  domain.NewHourSet(17),
	}
	bookingRepo := &mockBookingRepo{byDay: []*domain.Booking{taken}}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18, 19)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrHoursTaken)
	assert.Empty(t, bookingRepo.created)
}

func TestExecute_LegacyBookingWindowCountsAsTaken(t *testing.T) {
	// Старая запись без токенов часов: окно 16:00-18:00 покрывает часы 16 и 17
	legacy := &domain.Booking{
		Status:  domain.StatusConfirmed,
		StartAt: time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC),
		Hours:   domain.NewHourSet(),
	}
	bookingRepo := &mockBookingRepo{byDay: []*domain.Booking{legacy}}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18, 19)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrHoursTaken)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := &domain.Booking{
		Status: domain.StatusCancelled,
		Hours:  domain.NewHourSet(16, 17, 18),
	}
	bookingRepo := &mockBookingRepo{byDay: []*domain.Booking{cancelled}}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Len(t, bookingRepo.created, 1)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	availability := &mockAvailability{open: domain.NewHourSet(16, 17, 18)}
	uc := newTestUseCase(bookingRepo, availability, &mockServiceRepo{service: activeService()})

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsInactiveService(t *testing.T) {
	inactive := activeService()
	inactive.IsActive = false

	uc := newTestUseCase(&mockBookingRepo{}, &mockAvailability{open: domain.NewHourSet(16, 17, 18)},
		&mockServiceRepo{service: inactive})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_RejectsInvalidHours(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockAvailability{open: domain.NewHourSet(16)},
		&mockServiceRepo{service: activeService()})

	for _, hours := range [][]int{nil, {}, {24}, {-1}, {16, 16}} {
		req := validRequest()
		req.Hours = hours

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidHours, "hours=%v", hours)
	}
}

func TestExecute_RejectsOverlongAddress(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockAvailability{open: domain.NewHourSet(16, 17, 18)},
		&mockServiceRepo{service: activeService()})

	address := make([]byte, domain.MaxAddressLength+1)
	for i := range address {
		address[i] = 'a'
	}
	req := validRequest()
	req.Address = ptr.Ptr(string(address))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsOverlongNotes(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockAvailability{open: domain.NewHourSet(16, 17, 18)},
		&mockServiceRepo{service: activeService()})

	notes := make([]byte, domain.MaxNotesLength+1)
	for i := range notes {
		notes[i] = 'a'
	}
	req := validRequest()
	req.Notes = ptr.Ptr(string(notes))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	availabilityRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/availability"
)

// fakeRepo репозиторий в памяти, ключ - дата
type fakeRepo struct {
	days map[[3]int]*domain.AvailabilityDay

	inserts int
	updates int
	deletes int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{days: make(map[[3]int]*domain.AvailabilityDay)}
}

func (r *fakeRepo) key(year, month, day int) [3]int { return [3]int{year, month, day} }

func (r *fakeRepo) GetDay(_ context.Context, year, month, day int) (*domain.AvailabilityDay, error) {
	d, ok := r.days[r.key(year, month, day)]
	if !ok {
		return nil, availabilityRepo.ErrDayNotFound
	}
	return d, nil
}

func (r *fakeRepo) GetMonth(_ context.Context, year, month int) ([]*domain.AvailabilityDay, error) {
	result := make([]*domain.AvailabilityDay, 0)
	for _, d := range r.days {
		if d.Year == year && d.Month == month {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeRepo) Insert(_ context.Context, day *domain.AvailabilityDay) error {
	if day.Hours.IsEmpty() {
		return availabilityRepo.ErrEmptyHours
	}
	r.inserts++
	r.days[r.key(day.Year, day.Month, day.Day)] = day
	return nil
}

func (r *fakeRepo) UpdateHours(_ context.Context, year, month, day int, hours domain.HourSet) error {
	d, ok := r.days[r.key(year, month, day)]
	if !ok {
		return availabilityRepo.ErrDayNotFound
	}
	r.updates++
	d.Hours = hours
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, year, month, day int) error {
	if _, ok := r.days[r.key(year, month, day)]; !ok {
		return availabilityRepo.ErrDayNotFound
	}
	r.deletes++
	delete(r.days, r.key(year, month, day))
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, noopLogger{})
}

func TestGetDay_MissingRecordIsEmptySet(t *testing.T) {
	svc := newTestService(newFakeRepo())

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)

	require.NoError(t, err)
	assert.True(t, hours.IsEmpty())
}

func TestSetDayHours_CreatesRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	err := svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16, 17))

	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16-17", hours.Encode())
}

func TestSetDayHours_ReplaceNotMerge(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(9, 10)))
	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16", hours.Encode(), "previous hours must not survive a replace")
}

func TestSetDayHours_EmptySetDeletesRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))
	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet()))

	assert.Equal(t, 1, repo.deletes)
	assert.Empty(t, repo.days)
}

func TestSetDayHours_EmptySetWithoutRecordIsNoop(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet()))

	assert.Equal(t, 0, repo.deletes)
	assert.Equal(t, 0, repo.inserts)
}

func TestSetDayHours_EqualSetSkipsWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16, 17)))
	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(17, 16)))

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, 0, repo.updates, "identical hour set must not trigger a write")
}

func TestSetDayHours_RejectsInvalidDate(t *testing.T) {
	svc := newTestService(newFakeRepo())

	assert.ErrorIs(t, svc.SetDayHours(context.Background(), 2026, 2, 30, domain.NewHourSet(16)), ErrInvalidDate)
	assert.ErrorIs(t, svc.SetDayHours(context.Background(), 2026, 13, 1, domain.NewHourSet(16)), ErrInvalidDate)
}

func TestReleaseHours_SubtractsConsumed(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16, 17, 18)))
	require.NoError(t, svc.ReleaseHours(context.Background(), 2026, 9, 15, domain.NewHourSet(17)))

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16-18", hours.Encode())
}

func TestReleaseHours_IsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16, 17, 18)))
	require.NoError(t, svc.ReleaseHours(context.Background(), 2026, 9, 15, domain.NewHourSet(17)))
	require.NoError(t, svc.ReleaseHours(context.Background(), 2026, 9, 15, domain.NewHourSet(17)))

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16-18", hours.Encode())
}

func TestReleaseHours_EmptyRemainderDeletesRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))
	require.NoError(t, svc.ReleaseHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))

	assert.Empty(t, repo.days, "a day with no open hours must have no row")
}

func TestRestoreHours_MergesIntoExisting(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))
	require.NoError(t, svc.RestoreHours(context.Background(), 2026, 9, 15, domain.NewHourSet(17, 18)))

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16-17-18", hours.Encode())
}

func TestRestoreHours_RecreatesDeletedRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	// Запись отсутствует (все часы были выбраны), отмена возвращает их
	require.NoError(t, svc.RestoreHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16, 17)))

	hours, err := svc.GetDay(context.Background(), 2026, 9, 15)
	require.NoError(t, err)
	assert.Equal(t, "16-17", hours.Encode())
}

func TestGetMonth_MapsDaysToHours(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 15, domain.NewHourSet(16)))
	require.NoError(t, svc.SetDayHours(context.Background(), 2026, 9, 20, domain.NewHourSet(9, 10)))

	month, err := svc.GetMonth(context.Background(), 2026, 9)

	require.NoError(t, err)
	require.Len(t, month, 2)
	assert.Equal(t, "16", month[15].Encode())
	assert.Equal(t, "09-10", month[20].Encode())
}

func TestGetMonth_RejectsInvalidMonth(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetMonth(context.Background(), 2026, 0)

	assert.ErrorIs(t, err, ErrInvalidMonth)
}

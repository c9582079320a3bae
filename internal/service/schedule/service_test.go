package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	exceptionRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/exception"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	"github.com/ndelucca/lavadero-booking/pkg/types"
)

type fakeScheduleRepo struct {
	days           map[time.Weekday]*domain.WorkingDay
	margins        []domain.Margin
	createDayErr   error
	deleteDayErr   error
	setEnabledWeek *time.Weekday
	setEnabledVal  bool
	created        *domain.Margin
	updated        *domain.Margin
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, weekday time.Weekday, _ bool) (*domain.WorkingDay, error) {
	day, ok := f.days[weekday]
	if !ok {
		return nil, scheduleRepo.ErrWorkingDayNotFound
	}
	return day, nil
}

func (f *fakeScheduleRepo) ListDays(_ context.Context) ([]*domain.WorkingDay, error) {
	result := make([]*domain.WorkingDay, 0, len(f.days))
	for _, day := range f.days {
		result = append(result, day)
	}
	return result, nil
}

func (f *fakeScheduleRepo) CreateDay(_ context.Context, _ time.Weekday, _ bool) error {
	return f.createDayErr
}

func (f *fakeScheduleRepo) SetDayEnabled(_ context.Context, weekday time.Weekday, enabled bool) error {
	f.setEnabledWeek = &weekday
	f.setEnabledVal = enabled
	return nil
}

func (f *fakeScheduleRepo) DeleteDay(_ context.Context, _ time.Weekday) error {
	return f.deleteDayErr
}

func (f *fakeScheduleRepo) ListMargins(_ context.Context, weekday time.Weekday, onlyEnabled bool) ([]domain.Margin, error) {
	var result []domain.Margin
	for _, m := range f.margins {
		if m.Weekday != weekday {
			continue
		}
		if onlyEnabled && !m.Enabled {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeScheduleRepo) GetMarginByID(_ context.Context, id int64) (*domain.Margin, error) {
	for _, m := range f.margins {
		if m.ID == id {
			margin := m
			return &margin, nil
		}
	}
	return nil, scheduleRepo.ErrMarginNotFound
}

func (f *fakeScheduleRepo) CreateMargin(_ context.Context, margin *domain.Margin) (*domain.Margin, error) {
	created := *margin
	created.ID = int64(len(f.margins) + 1)
	f.created = &created
	return &created, nil
}

func (f *fakeScheduleRepo) UpdateMargin(_ context.Context, margin *domain.Margin) (*domain.Margin, error) {
	updated := *margin
	f.updated = &updated
	return &updated, nil
}

func (f *fakeScheduleRepo) DeleteMargin(_ context.Context, id int64) error {
	for _, m := range f.margins {
		if m.ID == id {
			return nil
		}
	}
	return scheduleRepo.ErrMarginNotFound
}

type fakeExceptionRepo struct {
	exceptions []*domain.Exception
	created    *domain.Exception
	deletedID  *int64
	disabledID *int64
}

func (f *fakeExceptionRepo) Create(_ context.Context, exc *domain.Exception) (*domain.Exception, error) {
	created := *exc
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeExceptionRepo) List(_ context.Context) ([]*domain.Exception, error) {
	return f.exceptions, nil
}

func (f *fakeExceptionRepo) SetEnabled(_ context.Context, id int64, _ bool) error {
	for _, exc := range f.exceptions {
		if exc.ID == id {
			f.disabledID = &id
			return nil
		}
	}
	return exceptionRepo.ErrExceptionNotFound
}

func (f *fakeExceptionRepo) Delete(_ context.Context, id int64) error {
	for _, exc := range f.exceptions {
		if exc.ID == id {
			f.deletedID = &id
			return nil
		}
	}
	return exceptionRepo.ErrExceptionNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTimeString(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func tuesdayRepo(t *testing.T, margins ...domain.Margin) *fakeScheduleRepo {
	t.Helper()
	return &fakeScheduleRepo{
		days: map[time.Weekday]*domain.WorkingDay{
			time.Tuesday: {Weekday: time.Tuesday, Enabled: true},
		},
		margins: margins,
	}
}

func TestUpsertWorkingDay(t *testing.T) {
	repo := tuesdayRepo(t)
	svc := NewService(repo, &fakeExceptionRepo{}, nopLogger{})

	// New day goes through CreateDay only.
	require.NoError(t, svc.UpsertWorkingDay(context.Background(), time.Monday, true))
	assert.Nil(t, repo.setEnabledWeek)

	// Existing day falls through to the enabled-flag update.
	repo.createDayErr = scheduleRepo.ErrDuplicateDay
	require.NoError(t, svc.UpsertWorkingDay(context.Background(), time.Tuesday, false))
	require.NotNil(t, repo.setEnabledWeek)
	assert.Equal(t, time.Tuesday, *repo.setEnabledWeek)
	assert.False(t, repo.setEnabledVal)

	err := svc.UpsertWorkingDay(context.Background(), time.Weekday(7), true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteWorkingDay(t *testing.T) {
	repo := tuesdayRepo(t)
	svc := NewService(repo, &fakeExceptionRepo{}, nopLogger{})

	require.NoError(t, svc.DeleteWorkingDay(context.Background(), time.Tuesday))

	repo.deleteDayErr = scheduleRepo.ErrWorkingDayNotFound
	assert.ErrorIs(t, svc.DeleteWorkingDay(context.Background(), time.Monday), ErrWorkingDayNotFound)

	repo.deleteDayErr = scheduleRepo.ErrDayHasMargins
	assert.ErrorIs(t, svc.DeleteWorkingDay(context.Background(), time.Tuesday), ErrDayHasMargins)
}

func TestCreateMargin(t *testing.T) {
	repo := tuesdayRepo(t)
	svc := NewService(repo, &fakeExceptionRepo{}, nopLogger{})

	resp, err := svc.CreateMargin(context.Background(), time.Tuesday, "09:00", "13:00", true)
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OpensAt)
	assert.Equal(t, "13:00", resp.ClosesAt)
	require.NotNil(t, repo.created)
	assert.Equal(t, time.Tuesday, repo.created.Weekday)
}

func TestCreateMarginValidation(t *testing.T) {
	repo := tuesdayRepo(t)
	svc := NewService(repo, &fakeExceptionRepo{}, nopLogger{})

	tests := []struct {
		name     string
		opensAt  string
		closesAt string
		wantErr  error
	}{
		{name: "close before open", opensAt: "13:00", closesAt: "09:00", wantErr: ErrInvalidRange},
		{name: "zero length", opensAt: "09:00", closesAt: "09:00", wantErr: ErrInvalidRange},
		{name: "malformed open", opensAt: "9am", closesAt: "13:00", wantErr: ErrInvalidInput},
		{name: "malformed close", opensAt: "09:00", closesAt: "25:00", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMargin(context.Background(), time.Tuesday, tt.opensAt, tt.closesAt, true)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateMarginUnknownDay(t *testing.T) {
	svc := NewService(tuesdayRepo(t), &fakeExceptionRepo{}, nopLogger{})

	_, err := svc.CreateMargin(context.Background(), time.Friday, "09:00", "13:00", true)
	assert.ErrorIs(t, err, ErrWorkingDayNotFound)
}

func TestCreateMarginOverlap(t *testing.T) {
	existing := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	svc := NewService(tuesdayRepo(t, existing), &fakeExceptionRepo{}, nopLogger{})

	_, err := svc.CreateMargin(context.Background(), time.Tuesday, "12:00", "16:00", true)
	var overlap *MarginOverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "09:00", overlap.OpensAt)
	assert.Equal(t, "13:00", overlap.ClosesAt)
}

func TestCreateMarginOverlapsDisabledMargin(t *testing.T) {
	// Disabled margins still reserve their range.
	existing := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  false,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	svc := NewService(tuesdayRepo(t, existing), &fakeExceptionRepo{}, nopLogger{})

	_, err := svc.CreateMargin(context.Background(), time.Tuesday, "10:00", "11:00", true)
	var overlap *MarginOverlapError
	assert.ErrorAs(t, err, &overlap)
}

func TestCreateMarginTouchingAllowed(t *testing.T) {
	existing := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	svc := NewService(tuesdayRepo(t, existing), &fakeExceptionRepo{}, nopLogger{})

	resp, err := svc.CreateMargin(context.Background(), time.Tuesday, "13:00", "18:00", true)
	require.NoError(t, err)
	assert.Equal(t, "13:00", resp.OpensAt)
}

func TestUpdateMarginExcludesItself(t *testing.T) {
	existing := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	repo := tuesdayRepo(t, existing)
	svc := NewService(repo, &fakeExceptionRepo{}, nopLogger{})

	// Widening a margin over its own old range is no conflict.
	resp, err := svc.UpdateMargin(context.Background(), 7, "09:00", "14:00", true)
	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.ClosesAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
}

func TestUpdateMarginConflictsWithOthers(t *testing.T) {
	first := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	second := domain.Margin{
		ID:       8,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "14:00"),
		ClosesAt: mustTimeString(t, "18:00"),
	}
	svc := NewService(tuesdayRepo(t, first, second), &fakeExceptionRepo{}, nopLogger{})

	_, err := svc.UpdateMargin(context.Background(), 7, "09:00", "15:00", true)
	var overlap *MarginOverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "14:00", overlap.OpensAt)
}

func TestUpdateMarginNotFound(t *testing.T) {
	svc := NewService(tuesdayRepo(t), &fakeExceptionRepo{}, nopLogger{})

	_, err := svc.UpdateMargin(context.Background(), 404, "09:00", "13:00", true)
	assert.ErrorIs(t, err, ErrMarginNotFound)
}

func TestDeleteMargin(t *testing.T) {
	existing := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	svc := NewService(tuesdayRepo(t, existing), &fakeExceptionRepo{}, nopLogger{})

	require.NoError(t, svc.DeleteMargin(context.Background(), 7))
	assert.ErrorIs(t, svc.DeleteMargin(context.Background(), 404), ErrMarginNotFound)
}

func TestCreateException(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	excRepo := &fakeExceptionRepo{}
	svc := NewService(tuesdayRepo(t), excRepo, nopLogger{})

	startsAt := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)
	endsAt := time.Date(2026, 9, 15, 12, 0, 0, 0, loc)

	resp, err := svc.CreateException(context.Background(), "  feriado nacional  ", startsAt, endsAt)
	require.NoError(t, err)
	assert.Equal(t, "feriado nacional", resp.Reason)
	assert.True(t, resp.Enabled)

	// Instants are stored in UTC.
	require.NotNil(t, excRepo.created)
	assert.Equal(t, time.UTC, excRepo.created.StartsAt.Location())
	assert.Equal(t, 13, excRepo.created.StartsAt.Hour())
}

func TestCreateExceptionValidation(t *testing.T) {
	svc := NewService(tuesdayRepo(t), &fakeExceptionRepo{}, nopLogger{})
	startsAt := time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC)
	endsAt := startsAt.Add(2 * time.Hour)

	_, err := svc.CreateException(context.Background(), "   ", startsAt, endsAt)
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := strings.Repeat("x", domain.MaxExceptionReasonLength+1)
	_, err = svc.CreateException(context.Background(), long, startsAt, endsAt)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateException(context.Background(), "feriado", endsAt, startsAt)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateException(context.Background(), "feriado", startsAt, startsAt)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteException(t *testing.T) {
	exc := &domain.Exception{ID: 3, Reason: "mantenimiento", Enabled: true}

	// Soft delete disables the row.
	excRepo := &fakeExceptionRepo{exceptions: []*domain.Exception{exc}}
	svc := NewService(tuesdayRepo(t), excRepo, nopLogger{})
	require.NoError(t, svc.DeleteException(context.Background(), 3, false))
	require.NotNil(t, excRepo.disabledID)
	assert.Nil(t, excRepo.deletedID)

	// Hard delete removes it.
	excRepo = &fakeExceptionRepo{exceptions: []*domain.Exception{exc}}
	svc = NewService(tuesdayRepo(t), excRepo, nopLogger{})
	require.NoError(t, svc.DeleteException(context.Background(), 3, true))
	require.NotNil(t, excRepo.deletedID)
	assert.Nil(t, excRepo.disabledID)

	assert.ErrorIs(t, svc.DeleteException(context.Background(), 404, true), ErrExceptionNotFound)
}

func TestGetSchedule(t *testing.T) {
	margin := domain.Margin{
		ID:       7,
		Weekday:  time.Tuesday,
		Enabled:  true,
		OpensAt:  mustTimeString(t, "09:00"),
		ClosesAt: mustTimeString(t, "13:00"),
	}
	repo := tuesdayRepo(t, margin)
	repo.days[time.Tuesday].Margins = []domain.Margin{margin}
	excRepo := &fakeExceptionRepo{exceptions: []*domain.Exception{
		{ID: 3, Reason: "mantenimiento", Enabled: false},
	}}
	svc := NewService(repo, excRepo, nopLogger{})

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Margins, 1)
	assert.Equal(t, "09:00", resp.Days[0].Margins[0].OpensAt)
	require.Len(t, resp.Exceptions, 1)
	assert.False(t, resp.Exceptions[0].Enabled)
}

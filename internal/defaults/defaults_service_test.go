package defaults_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/defaults"
	defaultserrors "go-guardconsole/internal/defaults/errors"
	defaultsMock "go-guardconsole/internal/defaults/mock"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newQueryClient() *query.Client {
	return query.NewClient(query.NewMemoryCache(), query.Options{
		StaleTime:  time.Minute,
		GCTime:     time.Minute,
		MaxRetries: 0,
	}, zap.NewNop())
}

func TestService_GetCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := defaultsMock.NewMockRepository(ctrl)
	service := defaults.NewService(mockRepo, newQueryClient(), zap.NewNop())
	ctx := context.Background()

	t.Run("Week calendar buckets every day", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, w daterange.Window) ([]defaults.Record, error) {
				assert.Equal(t, "2025-01-20", w.StartDate())
				assert.Equal(t, "2025-01-26", w.EndDate())
				return sampleRecords(), nil
			})

		resp, err := service.GetCalendar(ctx, "g-1", daterange.ViewWeek, "2025-01-23", false)
		require.NoError(t, err)

		assert.Equal(t, "2025-01-20", resp.StartDate)
		assert.Equal(t, "2025-01-26", resp.EndDate)
		require.Len(t, resp.Days, 7)
		assert.True(t, resp.Days[0].HasDefault)
		assert.Len(t, resp.Days[0].Defaults, 2)
		assert.False(t, resp.Days[1].HasDefault)
		assert.NotNil(t, resp.Days[1].Defaults)
		assert.True(t, resp.Days[2].HasDefault)
		assert.Equal(t, 1, resp.Counts[defaults.CategoryLate])
		assert.Equal(t, 0, resp.Counts[defaults.CategoryPatrol])
	})

	t.Run("Second call is served from cache", func(t *testing.T) {
		// no repo expectation: a call would fail the controller
		resp, err := service.GetCalendar(ctx, "g-1", daterange.ViewWeek, "2025-01-21", false)
		require.NoError(t, err)
		assert.Len(t, resp.Days, 7)
	})

	t.Run("Refresh bypasses cache", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-1", gomock.Any()).
			Return([]defaults.Record{}, nil)

		resp, err := service.GetCalendar(ctx, "g-1", daterange.ViewWeek, "2025-01-23", true)
		require.NoError(t, err)
		assert.False(t, resp.Days[0].HasDefault)
	})

	t.Run("Month calendar", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-2", gomock.Any()).
			Return(nil, nil)

		resp, err := service.GetCalendar(ctx, "g-2", daterange.ViewMonth, "2024-02-10", false)
		require.NoError(t, err)
		assert.Len(t, resp.Days, 29)
	})

	t.Run("Invalid date", func(t *testing.T) {
		_, err := service.GetCalendar(ctx, "g-1", daterange.ViewWeek, "23/01/2025", false)
		assert.ErrorIs(t, err, daterange.ErrInvalidArgument)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})

	t.Run("Empty guard id", func(t *testing.T) {
		_, err := service.GetCalendar(ctx, " ", daterange.ViewWeek, "2025-01-23", false)
		assert.ErrorIs(t, err, defaultserrors.ErrInvalidGuardID)
	})

	t.Run("Malformed record", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-bad", gomock.Any()).
			Return([]defaults.Record{{GuardID: "g-bad", Date: "yesterday"}}, nil)

		_, err := service.GetCalendar(ctx, "g-bad", daterange.ViewDay, "2025-01-23", false)
		assert.ErrorIs(t, err, defaultserrors.ErrMalformedDefaults)
		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-3", gomock.Any()).
			Return(nil, &httpclient.StatusError{Status: http.StatusForbidden})

		_, err := service.GetCalendar(ctx, "g-3", daterange.ViewDay, "2025-01-23", false)
		assert.Equal(t, apperror.CodeForbidden, apperror.ToHTTP(err).Code)
	})
}

func TestService_GetDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := defaultsMock.NewMockRepository(ctrl)
	service := defaults.NewService(mockRepo, newQueryClient(), zap.NewNop())
	ctx := context.Background()

	mockRepo.EXPECT().
		FindByGuardAndWindow(gomock.Any(), "g-1", gomock.Any()).
		Return(sampleRecords(), nil).
		Times(1)

	t.Run("Day with defaults", func(t *testing.T) {
		day, err := service.GetDay(ctx, "g-1", daterange.ViewWeek, "2025-01-20", false)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-20", day.Date)
		assert.True(t, day.HasDefault)
		assert.Len(t, day.Defaults, 2)
	})

	t.Run("Timestamped record counts for its day", func(t *testing.T) {
		day, err := service.GetDay(ctx, "g-1", daterange.ViewWeek, "2025-01-22", false)
		require.NoError(t, err)
		assert.Len(t, day.Defaults, 1)
	})

	t.Run("Empty day is not selectable", func(t *testing.T) {
		_, err := service.GetDay(ctx, "g-1", daterange.ViewWeek, "2025-01-21", false)
		assert.True(t, errors.Is(err, defaultserrors.ErrNoDefaultsForDay))
	})

	t.Run("Default view is DAY", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-9", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, w daterange.Window) ([]defaults.Record, error) {
				assert.Equal(t, 1, w.Days())
				return []defaults.Record{{GuardID: "g-9", Date: "2025-03-01", Category: defaults.CategoryGeofence}}, nil
			})

		day, err := service.GetDay(ctx, "g-9", "", "2025-03-01", false)
		require.NoError(t, err)
		assert.True(t, day.HasDefault)
	})
}

func TestService_GetRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := defaultsMock.NewMockRepository(ctrl)
	service := defaults.NewService(mockRepo, newQueryClient(), zap.NewNop())
	ctx := context.Background()

	t.Run("Every day of the range gets a cell", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByGuardAndWindow(gomock.Any(), "g-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, w daterange.Window) ([]defaults.Record, error) {
				assert.Equal(t, "2025-01-19", w.StartDate())
				assert.Equal(t, "2025-01-22", w.EndDate())
				return sampleRecords(), nil
			})

		resp, err := service.GetRange(ctx, "g-1", "2025-01-19", "2025-01-22", false)
		require.NoError(t, err)

		assert.Equal(t, defaults.ViewRange, resp.View)
		require.Len(t, resp.Days, 4)
		assert.False(t, resp.Days[0].HasDefault)
		assert.Len(t, resp.Days[1].Defaults, 2)
		assert.True(t, resp.Days[3].HasDefault)
		// 2025-02-03 lies outside the range
		assert.Equal(t, 0, resp.Counts[defaults.CategoryPatrol])
	})

	t.Run("Reversed range", func(t *testing.T) {
		_, err := service.GetRange(ctx, "g-1", "2025-01-22", "2025-01-19", false)
		assert.ErrorIs(t, err, daterange.ErrInvalidArgument)
	})

	t.Run("Range too long", func(t *testing.T) {
		_, err := service.GetRange(ctx, "g-1", "2025-01-01", "2025-06-30", false)
		assert.ErrorIs(t, err, daterange.ErrInvalidArgument)
	})

	t.Run("Malformed bound", func(t *testing.T) {
		_, err := service.GetRange(ctx, "g-1", "20-01-2025", "2025-01-22", false)
		assert.ErrorIs(t, err, daterange.ErrInvalidArgument)
	})

	t.Run("Blank guard", func(t *testing.T) {
		_, err := service.GetRange(ctx, " ", "2025-01-19", "2025-01-22", false)
		assert.ErrorIs(t, err, defaultserrors.ErrInvalidGuardID)
	})
}

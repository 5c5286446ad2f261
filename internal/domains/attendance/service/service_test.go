package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/otel/mocks"
	attendanceMocks "fauget/internal/domains/attendance/mocks"
	"fauget/internal/domains/attendance/model"
	"fauget/internal/domains/attendance/model/dto"
	"fauget/internal/domains/attendance/service"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	cacheMocks "fauget/shared/cache/mocks"
)

func newService(t *testing.T) (service.Attendance, *attendanceMocks.MockAttendance, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := attendanceMocks.NewMockAttendance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestAttendanceService_CheckIn(t *testing.T) {
	t.Run("successful check-in", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.CheckIn(context.Background(), dto.CheckInRequest{}, "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "user-id-123", res.UserID)
		assert.NotEmpty(t, res.CheckIn)
		assert.Nil(t, res.CheckOut)
	})

	t.Run("already checked in", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{}, "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	t.Run("successful check-out computes duration", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		openSession := model.Attendance{
			ID:             "attendance-id-1",
			UserID:         "user-id-123",
			CheckIn:        timezone.Now().Add(-90 * time.Minute),
			AttendanceDate: timezone.Today(),
		}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openSession, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				duration, ok := req[model.FieldDurationMinutes].(int)
				assert.True(t, ok)
				assert.GreaterOrEqual(t, duration, 90)
				assert.LessOrEqual(t, duration, 91)

				return nil
			})

		res, err := svc.CheckOut(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.NotNil(t, res.CheckOut)
		assert.GreaterOrEqual(t, res.DurationMinutes, 90)
	})

	t.Run("not checked in", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Attendance{}, nil)

		_, err := svc.CheckOut(context.Background(), "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAttendanceService_WeeklyHours(t *testing.T) {
	t.Run("sums completed sessions", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		sessions := []model.Attendance{
			{ID: "a1", DurationMinutes: 60},
			{ID: "a2", DurationMinutes: 45},
			{ID: "a3", DurationMinutes: 30},
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sessions, nil)

		res, err := svc.WeeklyHours(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Hours)
		assert.Equal(t, 15, res.Minutes)
		assert.Equal(t, 135, res.TotalMinutes)
		assert.Equal(t, 3, res.Sessions)
	})

	t.Run("no sessions", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Attendance{}, nil)

		res, err := svc.WeeklyHours(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalMinutes)
		assert.Equal(t, 0, res.Sessions)
	})
}

func TestAttendanceService_MonthlyCount(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)

	count, err := svc.MonthlyCount(context.Background(), "user-id-123")

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}

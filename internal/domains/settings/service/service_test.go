package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/otel/mocks"
	settingsMocks "fauget/internal/domains/settings/mocks"
	"fauget/internal/domains/settings/model"
	"fauget/internal/domains/settings/model/dto"
	"fauget/internal/domains/settings/service"
	"fauget/shared/constant"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	cacheMocks "fauget/shared/cache/mocks"
)

func newService(t *testing.T) (service.Settings, *settingsMocks.MockSettings, *settingsMocks.MockHoliday, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockHolidayRepo := settingsMocks.NewMockHoliday(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockHolidayRepo, cfg, mockCache, mockOtel), mockRepo, mockHolidayRepo, mockCache
}

func seededSettings() model.GymSettings {
	return model.GymSettings{
		ID:                 "settings-id-1",
		Hours:              model.DefaultWeekHours(),
		SlotDuration:       2,
		MaxCapacityPerSlot: 20,
		AvailableSlots:     model.SlotList{"06:00", "08:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00"},
	}
}

func TestSettingsService_GetSettings(t *testing.T) {
	t.Run("settings are returned", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(seededSettings(), nil)

		res, err := svc.GetSettings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.SlotDuration)
		assert.Equal(t, 20, res.MaxCapacityPerSlot)
		assert.Len(t, res.AvailableSlots, 8)
		assert.Equal(t, "06:00", res.Hours["monday"].Open)
		assert.Equal(t, "08:00", res.Hours["saturday"].Open)
		assert.Equal(t, "14:00", res.Hours["sunday"].Close)
	})

	t.Run("missing singleton", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GymSettings{}, nil)

		_, err := svc.GetSettings(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "developer-id-1")

	t.Run("partial update keeps untouched days", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(seededSettings(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		capacity := 30
		req := dto.UpdateSettingsRequest{
			Hours: model.WeekHours{
				"sunday": {Closed: true},
			},
			MaxCapacityPerSlot: &capacity,
		}

		res, err := svc.UpdateSettings(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 30, res.MaxCapacityPerSlot)
		assert.True(t, res.Hours["sunday"].Closed)
		assert.Equal(t, "06:00", res.Hours["monday"].Open)
		assert.Equal(t, 2, res.SlotDuration)
	})

	t.Run("missing singleton", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GymSettings{}, nil)

		_, err := svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSettingsService_AddHoliday(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "developer-id-1")

	req := dto.CreateHolidayRequest{
		Date: "2026-12-25",
		Name: "Christmas",
	}

	t.Run("successful holiday creation", func(t *testing.T) {
		svc, _, mockHolidayRepo, _ := newService(t)

		mockHolidayRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockHolidayRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.AddHoliday(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-12-25", res.Date)
		assert.Equal(t, "Christmas", res.Name)
	})

	t.Run("duplicate date is rejected", func(t *testing.T) {
		svc, _, mockHolidayRepo, _ := newService(t)

		mockHolidayRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.AddHoliday(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid date format is rejected", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		badReq := req
		badReq.Date = "25/12/2026"

		_, err := svc.AddHoliday(ctx, badReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSettingsService_DeleteHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		svc, _, mockHolidayRepo, _ := newService(t)

		mockHolidayRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockHolidayRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.DeleteHoliday(ctx, "holiday-id-1")

		assert.NoError(t, err)
	})

	t.Run("holiday not found", func(t *testing.T) {
		svc, _, mockHolidayRepo, _ := newService(t)

		mockHolidayRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteHoliday(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSettingsService_GetHolidays(t *testing.T) {
	svc, _, mockHolidayRepo, mockCache := newService(t)

	holidays := []model.Holiday{
		{ID: "h1", HolidayDate: timezone.Today(), Name: "New Year"},
		{ID: "h2", HolidayDate: timezone.Today().AddDate(0, 0, 30), Name: "Founders Day"},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockHolidayRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(holidays, nil)

	res, err := svc.GetHolidays(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Holidays, 2)
	assert.Equal(t, "New Year", res.Holidays[0].Name)
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/otel/mocks"
	bookingMocks "fauget/internal/domains/booking/mocks"
	"fauget/internal/domains/booking/model"
	"fauget/internal/domains/booking/model/dto"
	"fauget/internal/domains/booking/service"
	"fauget/shared/constant"
	"fauget/shared/failure"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	cacheMocks "fauget/shared/cache/mocks"
)

const maxCapacity = 20

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Gym.MaxCapacityPerSlot = maxCapacity

	// Async cache writes and invalidations may or may not run before the
	// test finishes.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestBookingService_GetAvailableSlots(t *testing.T) {
	date := timezone.Today().AddDate(0, 0, 1).Format(constant.BookingDateFormat)

	t.Run("all slots open", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil).Times(len(model.SlotCatalog))

		res, err := svc.GetAvailableSlots(context.Background(), date)

		assert.NoError(t, err)
		assert.Equal(t, date, res.Date)
		assert.Len(t, res.Slots, len(model.SlotCatalog))

		for i, slot := range res.Slots {
			assert.Equal(t, model.SlotCatalog[i], slot.StartTime)
			assert.True(t, slot.Available)
			assert.Equal(t, maxCapacity-5, slot.SpotsLeft)
		}
	})

	t.Run("full slot reports unavailable with zero spots", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(maxCapacity, nil).Times(len(model.SlotCatalog))

		res, err := svc.GetAvailableSlots(context.Background(), date)

		assert.NoError(t, err)

		for _, slot := range res.Slots {
			assert.False(t, slot.Available)
			assert.Equal(t, 0, slot.SpotsLeft)
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.GetAvailableSlots(context.Background(), "31-12-2026")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Create(t *testing.T) {
	tomorrow := timezone.Today().AddDate(0, 0, 1).Format(constant.BookingDateFormat)
	ctx := userContext("user-id-123")

	validReq := dto.CreateBookingRequest{
		Date:      tomorrow,
		StartTime: "10:00",
		Duration:  2,
	}

	t.Run("successful booking computes end time", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(maxCapacity-1, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertConfirmed(gomock.Any(), gomock.Any(), maxCapacity).Return(true, nil)

		res, err := svc.Create(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, "user-id-123", res.UserID)
		assert.Equal(t, tomorrow, res.Date)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "12:00", res.EndTime)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("last spot can be taken", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(maxCapacity-1, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertConfirmed(gomock.Any(), gomock.Any(), maxCapacity).Return(true, nil)

		_, err := svc.Create(ctx, validReq)

		assert.NoError(t, err)
	})

	t.Run("full slot is rejected", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(maxCapacity, nil)

		_, err := svc.Create(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate booking is rejected", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("racing request losing the last spot is rejected", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(maxCapacity-1, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertConfirmed(gomock.Any(), gomock.Any(), maxCapacity).Return(false, nil)

		_, err := svc.Create(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("past date is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := validReq
		req.Date = timezone.Today().AddDate(0, 0, -1).Format(constant.BookingDateFormat)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid date format is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := validReq
		req.Date = "not-a-date"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := userContext("user-id-123")

	futureBooking := model.Booking{
		ID:            "booking-id-1",
		UserID:        "user-id-123",
		BookingDate:   timezone.Today().AddDate(0, 0, 1),
		StartTime:     "10:00",
		EndTime:       "12:00",
		DurationHours: 2,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedBy:  "user-id-123",
			ModifiedBy: "user-id-123",
		},
	}

	t.Run("successful cancel", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(futureBooking, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Cancel(ctx, futureBooking.ID)

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Cancel(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		otherBooking := futureBooking
		otherBooking.UserID = "someone-else"

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(otherBooking, nil)

		err := svc.Cancel(ctx, otherBooking.ID)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("past booking cannot be cancelled", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		pastBooking := futureBooking
		pastBooking.BookingDate = timezone.Today().AddDate(0, 0, -1)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pastBooking, nil)

		err := svc.Cancel(ctx, pastBooking.ID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_GetUpcoming(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	bookings := []model.Booking{
		{ID: "b1", UserID: "user-id-123", BookingDate: timezone.Today(), StartTime: "08:00", EndTime: "10:00", Status: model.StatusConfirmed},
		{ID: "b2", UserID: "user-id-123", BookingDate: timezone.Today().AddDate(0, 0, 2), StartTime: "10:00", EndTime: "12:00", Status: model.StatusConfirmed},
	}

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)

	res, err := svc.GetUpcoming(context.Background(), "user-id-123", 5)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "b1", res[0].ID)
	assert.Equal(t, "b2", res[1].ID)
}

func TestBookingService_CountActive(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

	count, err := svc.CountActive(context.Background(), "user-id-123")

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

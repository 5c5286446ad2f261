package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/otel/mocks"
	attendanceMocks "fauget/internal/domains/attendance/mocks"
	attendanceModel "fauget/internal/domains/attendance/model"
	attendanceService "fauget/internal/domains/attendance/service"
	bookingMocks "fauget/internal/domains/booking/mocks"
	bookingModel "fauget/internal/domains/booking/model"
	bookingService "fauget/internal/domains/booking/service"
	"fauget/internal/domains/dashboard/model/dto"
	"fauget/internal/domains/dashboard/service"
	paymentMocks "fauget/internal/domains/payment/mocks"
	paymentModel "fauget/internal/domains/payment/model"
	paymentService "fauget/internal/domains/payment/service"
	subscriptionMocks "fauget/internal/domains/subscription/mocks"
	subscriptionModel "fauget/internal/domains/subscription/model"
	subscriptionService "fauget/internal/domains/subscription/service"
	userMocks "fauget/internal/domains/user/mocks"
	"fauget/shared/timezone"

	kafkaMocks "fauget/infras/kafka/mocks"
	mercadopagoMocks "fauget/infras/mercadopago/mocks"
	cacheMocks "fauget/shared/cache/mocks"
)

type dashboardMocksBundle struct {
	bookingRepo      *bookingMocks.MockBooking
	subscriptionRepo *subscriptionMocks.MockSubscription
	paymentRepo      *paymentMocks.MockPayment
	attendanceRepo   *attendanceMocks.MockAttendance
	cache            *cacheMocks.MockRedisCache
}

// newService wires the dashboard over real domain services backed by
// repository mocks.
func newService(t *testing.T) (service.Dashboard, dashboardMocksBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := dashboardMocksBundle{
		bookingRepo:      bookingMocks.NewMockBooking(ctrl),
		subscriptionRepo: subscriptionMocks.NewMockSubscription(ctrl),
		paymentRepo:      paymentMocks.NewMockPayment(ctrl),
		attendanceRepo:   attendanceMocks.NewMockAttendance(ctrl),
		cache:            cacheMocks.NewMockRedisCache(ctrl),
	}

	mockOtel := mocks.NewOtel()
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCheckout := mercadopagoMocks.NewMockCheckout(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}

	bundle.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	bundle.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	booking := bookingService.New(bundle.bookingRepo, cfg, bundle.cache, mockOtel)
	subscription := subscriptionService.New(bundle.subscriptionRepo, mockUserRepo, cfg, bundle.cache, mockOtel)
	payment := paymentService.New(bundle.paymentRepo, mockUserRepo, cfg, bundle.cache, mockOtel, mockCheckout, mockKafka)
	attendance := attendanceService.New(bundle.attendanceRepo, cfg, bundle.cache, mockOtel)

	return service.New(booking, subscription, payment, attendance, mockOtel), bundle
}

func TestDashboardService_Overview(t *testing.T) {
	t.Run("subscriber with activity", func(t *testing.T) {
		svc, bundle := newService(t)

		subscription := subscriptionModel.Subscription{
			ID:            "subscription-id-1",
			UserID:        "user-id-123",
			PlanType:      subscriptionModel.PlanTypeClassic,
			Status:        subscriptionModel.StatusActive,
			PaymentStatus: subscriptionModel.PaymentStatusUpToDate,
			StartDate:     timezone.Now(),
			EndDate:       timezone.Now().AddDate(0, 0, 30),
		}

		bundle.subscriptionRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(subscription, nil)
		bundle.attendanceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]attendanceModel.Attendance{{ID: "a1", DurationMinutes: 75}}, nil)
		bundle.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1", UserID: "user-id-123", BookingDate: timezone.Today(), StartTime: "10:00"}}, nil)
		bundle.paymentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{{ID: "p1", UserID: "user-id-123", PaymentDate: timezone.Now(), DueDate: timezone.Now(), Status: paymentModel.StatusCompleted}}, nil)
		bundle.paymentRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		res, err := svc.Overview(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.NotNil(t, res.Subscription)
		assert.Equal(t, subscriptionModel.PaymentStatusUpToDate, res.PaymentStatus)
		assert.Equal(t, 75, res.WeeklyHours.TotalMinutes)
		assert.Len(t, res.UpcomingBookings, 1)
		assert.NotNil(t, res.LastPayment)
		assert.False(t, res.HasPendingPayments)
	})

	t.Run("user without subscription", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.subscriptionRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(subscriptionModel.Subscription{}, nil)
		bundle.attendanceRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]attendanceModel.Attendance{}, nil)
		bundle.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil)
		bundle.paymentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]paymentModel.Payment{}, nil)
		bundle.paymentRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		res, err := svc.Overview(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Nil(t, res.Subscription)
		assert.Equal(t, dto.PaymentStatusNone, res.PaymentStatus)
		assert.Nil(t, res.LastPayment)
		assert.Empty(t, res.UpcomingBookings)
		assert.True(t, res.HasPendingPayments)
	})
}

func TestDashboardService_Stats(t *testing.T) {
	svc, bundle := newService(t)

	bundle.attendanceRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(8, nil)
	bundle.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	res, err := svc.Stats(context.Background(), "user-id-123")

	assert.NoError(t, err)
	assert.Equal(t, 8, res.MonthlyAttendances)
	assert.Equal(t, 2, res.ActiveBookings)
}

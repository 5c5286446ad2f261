package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/mercadopago"
	mercadopagoMocks "fauget/infras/mercadopago/mocks"
	"fauget/infras/otel/mocks"
	paymentMocks "fauget/internal/domains/payment/mocks"
	"fauget/internal/domains/payment/model"
	"fauget/internal/domains/payment/model/dto"
	"fauget/internal/domains/payment/service"
	subscriptionModel "fauget/internal/domains/subscription/model"
	userMocks "fauget/internal/domains/user/mocks"
	userModel "fauget/internal/domains/user/model"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	kafkaMocks "fauget/infras/kafka/mocks"
	cacheMocks "fauget/shared/cache/mocks"
)

type paymentMocksBundle struct {
	repo     *paymentMocks.MockPayment
	userRepo *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	checkout *mercadopagoMocks.MockCheckout
	kafka    *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Payment, paymentMocksBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := paymentMocksBundle{
		repo:     paymentMocks.NewMockPayment(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		checkout: mercadopagoMocks.NewMockCheckout(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.PaymentsTopic = "gym.payments"

	bundle.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	bundle.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	bundle.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	bundle.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(bundle.repo, bundle.userRepo, cfg, bundle.cache, mocks.NewOtel(), bundle.checkout, bundle.kafka)

	return svc, bundle
}

func TestPaymentService_Checkout(t *testing.T) {
	validUser := userModel.User{
		ID:    "user-id-123",
		Email: "member@example.com",
	}

	t.Run("successful checkout", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
		bundle.checkout.EXPECT().
			CreatePreference(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req mercadopago.CheckoutRequest) (*mercadopago.CheckoutResult, error) {
				assert.Equal(t, subscriptionModel.PlanCatalog[subscriptionModel.PlanTypeClassic].Name, req.Title)
				assert.Equal(t, float64(30000), req.UnitPrice)
				assert.Equal(t, validUser.Email, req.PayerEmail)

				return &mercadopago.CheckoutResult{
					PaymentURL:   "https://mercadopago.test/init",
					PreferenceID: "pref-id-1",
				}, nil
			})
		bundle.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Checkout(context.Background(), dto.CheckoutRequest{PlanType: subscriptionModel.PlanTypeClassic}, validUser.ID)

		assert.NoError(t, err)
		assert.Equal(t, "https://mercadopago.test/init", res.PaymentURL)
		assert.Equal(t, "pref-id-1", res.Identifier)
	})

	t.Run("unknown plan", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{PlanType: "platinum"}, validUser.ID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{PlanType: subscriptionModel.PlanTypeClassic}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("preference creation failure", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
		bundle.checkout.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway unavailable"))

		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{PlanType: subscriptionModel.PlanTypeClassic}, validUser.ID)

		assert.Error(t, err)
	})
}

func TestPaymentService_LastPayment(t *testing.T) {
	t.Run("latest payment is returned", func(t *testing.T) {
		svc, bundle := newService(t)

		payments := []model.Payment{
			{
				ID:          "payment-id-1",
				UserID:      "user-id-123",
				Amount:      30000,
				PaymentDate: timezone.Now(),
				DueDate:     timezone.Now().AddDate(0, 0, dto.PendingPaymentDays),
				Status:      model.StatusCompleted,
				Method:      model.MethodMercadoPago,
			},
		}

		bundle.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(payments, nil)

		res, err := svc.LastPayment(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, "payment-id-1", res.ID)
		assert.Equal(t, model.StatusCompleted, res.Status)
	})

	t.Run("no payments yields nil without error", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Payment{}, nil)

		res, err := svc.LastPayment(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestPaymentService_HasPendingPayments(t *testing.T) {
	t.Run("overdue pending payment", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		pending, err := svc.HasPendingPayments(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.True(t, pending)
	})

	t.Run("nothing overdue", func(t *testing.T) {
		svc, bundle := newService(t)

		bundle.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		pending, err := svc.HasPendingPayments(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.False(t, pending)
	})
}

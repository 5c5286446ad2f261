package service

import (
	"context"
	"fmt"

	"fauget/config"
	"fauget/infras/kafka"
	"fauget/infras/mercadopago"
	"fauget/infras/otel"
	"fauget/internal/domains/payment/model"
	"fauget/internal/domains/payment/model/dto"
	"fauget/internal/domains/payment/repository"
	subscriptionModel "fauget/internal/domains/subscription/model"
	userModel "fauget/internal/domains/user/model"
	userRepo "fauget/internal/domains/user/repository"
	"fauget/shared"
	"fauget/shared/cache"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
	cacheLastPayment   = "payment:last"
)

type Payment interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest, userID string) (dto.CheckoutResponse, error)
	History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	LastPayment(ctx context.Context, userID string) (*dto.PaymentResponse, error)
	HasPendingPayments(ctx context.Context, userID string) (bool, error)
}

type serviceImpl struct {
	repo     repository.Payment
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	checkout mercadopago.Checkout
	kafka    kafka.Client
}

func New(
	repo repository.Payment,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	checkout mercadopago.Checkout,
	kafka kafka.Client,
) Payment {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		checkout: checkout,
		kafka:    kafka,
	}
}

// Checkout creates a pending payment and a Mercado Pago preference for the
// selected plan, then publishes the checkout event.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest, userID string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, ok := subscriptionModel.PlanCatalog[req.PlanType]
	if !ok {
		return res, failure.BadRequestFromString("the selected plan does not exist") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	payment := req.ToModel(userID, plan.Price, plan.Name)

	result, err := s.checkout.CreatePreference(ctx, mercadopago.CheckoutRequest{
		Title:       plan.Name,
		Description: plan.Description,
		Quantity:    1,
		UnitPrice:   plan.Price,
		ExternalRef: payment.ID,
		PayerEmail:  user.Email,
	})
	if err != nil {
		log.Error().Err(err).Str("planType", req.PlanType).Msg("failed to create checkout preference")

		return res, fmt.Errorf("failed to create checkout preference: %w", err)
	}

	payment.MercadoPagoID = &result.PreferenceID

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.CheckoutEvent{
			PaymentID:    payment.ID,
			UserID:       userID,
			PlanType:     req.PlanType,
			Amount:       plan.Price,
			PreferenceID: result.PreferenceID,
			CreatedAt:    timezone.Format(payment.CreatedAt, constant.DateFormat),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.PaymentsTopic, kafka.Message{Key: payment.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("paymentId", payment.ID).Msg("failed to publish checkout event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheLastPayment, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete last payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	res.PaymentURL = result.PaymentURL
	res.Identifier = result.PreferenceID

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

// LastPayment returns the user's most recent payment, or nil when the user
// has never paid.
func (s *serviceImpl) LastPayment(ctx context.Context, userID string) (res *dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LastPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldPaymentDate,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get last payment")

		return nil, fmt.Errorf("failed to get last payment: %w", err)
	}

	if len(models) == 0 {
		return nil, nil
	}

	res = &dto.PaymentResponse{}
	res.FromModel(models[0])

	return res, nil
}

// HasPendingPayments reports whether the user has pending payments past
// their due date.
func (s *serviceImpl) HasPendingPayments(ctx context.Context, userID string) (pending bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasPendingPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDueDate,
				Operator: gDto.FilterOperatorLess,
				Value:    timezone.Now(),
				Table:    model.TableName,
			},
		},
	}

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending payments")

		return false, fmt.Errorf("failed to count pending payments: %w", err)
	}

	return count > 0, nil
}

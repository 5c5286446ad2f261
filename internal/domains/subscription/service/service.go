package service

import (
	"context"
	"fmt"

	"fauget/config"
	"fauget/infras/otel"
	"fauget/internal/domains/subscription/model"
	"fauget/internal/domains/subscription/model/dto"
	"fauget/internal/domains/subscription/repository"
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
	cacheGetSubscription    = "subscription:get"
	cacheGetAllSubscription = "subscription:gets"
	cacheCountSubscription  = "subscription:count"
	cacheMyPlan             = "subscription:my-plan"
)

type Subscription interface {
	Plans(ctx context.Context) []model.Plan
	GetMyPlan(ctx context.Context, userID string) (*dto.SubscriptionResponse, error)
	Subscribe(ctx context.Context, req dto.SubscribeRequest, userID string) (dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userID string) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSubscriptionsResponse, error)
	Assign(ctx context.Context, req dto.AssignPlanRequest) (dto.SubscriptionResponse, error)
	Update(ctx context.Context, req dto.UpdateSubscriptionRequest, id string) error
	UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
}

type serviceImpl struct {
	repo     repository.Subscription
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Subscription, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Subscription {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func activePlanFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
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
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}
}

// Plans lists the fixed plan catalog in a stable order.
func (s *serviceImpl) Plans(_ context.Context) []model.Plan {
	return []model.Plan{
		model.PlanCatalog[model.PlanTypeClassic],
		model.PlanCatalog[model.PlanTypeOnline],
		model.PlanCatalog[model.PlanTypePremium],
	}
}

func (s *serviceImpl) GetMyPlan(ctx context.Context, userID string) (res *dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyPlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheMyPlan, userID)

	var cached dto.SubscriptionResponse

	err = s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for my plan")

		return &cached, nil
	}

	subscription, err := s.repo.Get(ctx, activePlanFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscription")

		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.ID == constant.Empty {
		return nil, nil
	}

	res = &dto.SubscriptionResponse{}
	res.FromModel(subscription)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, *res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save my plan to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest, userID string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, ok := model.PlanCatalog[req.PlanType]
	if !ok {
		return res, failure.BadRequestFromString("the selected plan does not exist") //nolint:wrapcheck
	}

	active, err := s.repo.Exist(ctx, activePlanFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check active subscription")

		return res, fmt.Errorf("failed to check active subscription: %w", err)
	}

	if active {
		return res, failure.BadRequestFromString("you already have an active plan") //nolint:wrapcheck
	}

	subscription := req.ToModel(userID, plan)

	if err = s.repo.Insert(ctx, subscription); err != nil {
		log.Error().Err(err).Msg("failed to create subscription")

		return res, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.invalidate(ctx, userID)

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := activePlanFilter(userID)

	subscription, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscription")

		return fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.ID == constant.Empty {
		return failure.NotFound("you don't have an active plan to cancel") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		model.FieldAutoRenew:     false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(subscription.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel subscription")

		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.invalidate(ctx, userID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSubscriptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSubscription, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for subscriptions")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscriptions")

		return res, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriptions")

		return res, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save subscriptions to cache")
		}
	}()

	return res, nil
}

// Assign gives a user a plan on the admin's behalf, deactivating any plan the
// user already holds.
func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignPlanRequest) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, ok := model.PlanCatalog[req.PlanType]
	if !ok {
		return res, failure.BadRequestFromString("the selected plan does not exist") //nolint:wrapcheck
	}

	userExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !userExists {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	deactivated := map[string]any{
		model.FieldStatus:        model.StatusInactive,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.repo.Update(ctx, deactivated, activePlanFilter(req.UserID)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate previous subscriptions")

		return res, fmt.Errorf("failed to deactivate previous subscriptions: %w", err)
	}

	subscription := req.ToModel(actor, plan)

	if err = s.repo.Insert(ctx, subscription); err != nil {
		log.Error().Err(err).Msg("failed to assign subscription")

		return res, fmt.Errorf("failed to assign subscription: %w", err)
	}

	s.invalidate(ctx, req.UserID)

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSubscriptionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSubscriptionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.applyUpdate(ctx, shared.TransformFields(req, actor), id)
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldPaymentStatus: req.PaymentStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	return s.applyUpdate(ctx, updatedFields, id)
}

func (s *serviceImpl) applyUpdate(ctx context.Context, updatedFields map[string]any, id string) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	subscription, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscription")

		return fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.ID == constant.Empty {
		return failure.NotFound("subscription not found") //nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update subscription")

		return fmt.Errorf("failed to update subscription: %w", err)
	}

	s.invalidate(ctx, subscription.UserID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheMyPlan, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete my plan from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetSubscription)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSubscription)
		shared.InvalidateCaches(c, s.cache, cacheCountSubscription)
	}()
}

package subscription

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/subscription/model"
	"fauget/internal/domains/subscription/model/dto"
	"fauget/internal/domains/subscription/service"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/validator"
	"fauget/transport/http/middleware"
	"fauget/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Subscription
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Subscription, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/subscriptions", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/plans", handler.GetPlans)
		routerGroup.Get("/my-plan", handler.GetMyPlan)
		routerGroup.Post("/subscribe", handler.Subscribe)
		routerGroup.Put("/cancel", handler.Cancel)
	})

	router.Route("/admin/subscriptions", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/", handler.GetSubscriptions)
		routerGroup.Post("/assign", handler.AssignPlan)
		routerGroup.Put("/{id}", handler.UpdateSubscription)
		routerGroup.Put("/{id}/payment-status", handler.UpdatePaymentStatus)
	})
}

// GetPlans lists the plan catalog.
// @Summary Get subscription plans
// @Description Retrieve the catalog of available subscription plans.
// @Tags Subscription
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "List of plans"
// @Router /api/subscriptions/plans [get]
// @Security BearerAuth
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	plans := handler.service.Plans(ctx)

	scope.AddEvent("Plans retrieved successfully")

	response.WithJSON(w, http.StatusOK, plans)
}

// GetMyPlan retrieves the authenticated user's active subscription.
// @Summary Get my plan
// @Description Retrieve the active subscription of the currently authenticated user, if any.
// @Tags Subscription
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Active subscription or empty"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/subscriptions/my-plan [get]
// @Security BearerAuth
func (handler *Handler) GetMyPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyPlan")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	plan, err := handler.service.GetMyPlan(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my plan")

		response.WithError(w, err)

		return
	}

	if plan == nil {
		response.WithJSONMessage(w, http.StatusOK, nil, "You don't have an active plan")

		return
	}

	scope.AddEvent("My plan retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, plan)
}

// Subscribe creates a subscription for the authenticated user.
// @Summary Subscribe to a plan
// @Description Subscribe the currently authenticated user to a plan from the catalog.
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Base "Plan subscribed successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/subscriptions/subscribe [post]
// @Security BearerAuth
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.SubscribeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	subscription, err := handler.service.Subscribe(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Plan subscribed successfully by user " + userID)

	response.WithJSONMessage(w, http.StatusCreated, subscription, "Plan subscribed successfully")
}

// Cancel cancels the authenticated user's active subscription.
// @Summary Cancel my plan
// @Description Cancel the active subscription of the currently authenticated user.
// @Tags Subscription
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Plan cancelled successfully"
// @Failure 401 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/subscriptions/cancel [put]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := handler.service.Cancel(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel subscription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Plan cancelled successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Plan cancelled successfully")
}

// GetSubscriptions retrieves all subscriptions for the admin panel.
// @Summary Get all subscriptions
// @Description Retrieve all subscriptions with optional filtering and pagination. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Base "List of subscriptions"
// @Failure 403 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/admin/subscriptions [get]
// @Security BearerAuth
func (handler *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID := r.URL.Query().Get(model.FieldUserID)
	status := r.URL.Query().Get(model.FieldStatus)
	paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	subscriptions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscriptions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscriptions retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscriptions)
}

// AssignPlan assigns a plan to a user.
// @Summary Assign a plan to a user
// @Description Assign a subscription plan to a user, deactivating any active plan they hold. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AssignPlanRequest true "Assign Plan Request"
// @Success 201 {object} response.Base "Plan assigned successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/subscriptions/assign [post]
// @Security BearerAuth
func (handler *Handler) AssignPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignPlan")
	defer scope.End()

	req := dto.AssignPlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	subscription, err := handler.service.Assign(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign plan")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Plan assigned successfully by user " + actor)

	response.WithJSONMessage(w, http.StatusCreated, subscription, "Plan assigned successfully")
}

// UpdateSubscription edits a subscription.
// @Summary Update a subscription
// @Description Update a subscription's plan, price, end date, or status. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body dto.UpdateSubscriptionRequest true "Update Subscription Request"
// @Success 200 {object} response.Base "Subscription updated successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/subscriptions/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubscription")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSubscriptionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update subscription")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Subscription updated successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Subscription updated successfully")
}

// UpdatePaymentStatus changes a subscription's payment status.
// @Summary Update payment status
// @Description Change the payment status of a subscription. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body dto.UpdatePaymentStatusRequest true "Update Payment Status Request"
// @Success 200 {object} response.Base "Payment status updated successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/subscriptions/{id}/payment-status [put]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePaymentStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment status updated successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Payment status updated successfully")
}

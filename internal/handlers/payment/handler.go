package payment

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/payment/model"
	"fauget/internal/domains/payment/model/dto"
	"fauget/internal/domains/payment/service"
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
	service    service.Payment
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Payment, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/checkout", handler.Checkout)
		routerGroup.Get("/history", handler.GetHistory)
	})
}

// Checkout creates a payment preference for a plan.
// @Summary Create a payment checkout
// @Description Create a Mercado Pago checkout for the selected plan and return the payment URL.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 200 {object} response.Base "Checkout created successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/payments/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CheckoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkout, err := handler.service.Checkout(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checkout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout created successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, checkout)
}

// GetHistory retrieves the authenticated user's payment history.
// @Summary Get payment history
// @Description Retrieve the payments of the currently authenticated user, most recent first.
// @Tags Payment
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, completed, failed, refunded)"
// @Success 200 {object} response.Base "List of payments"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/payments/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldPaymentDate
		queryParams.SortDir = gDto.SortDirDesc
	}

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	payments, err := handler.service.History(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment history retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, payments)
}

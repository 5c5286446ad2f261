package dashboard

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/dashboard/service"
	"fauget/shared/constant"
	"fauget/shared/failure"
	"fauget/transport/http/middleware"
	"fauget/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Dashboard
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Dashboard, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// GetDashboard aggregates the caller's home screen data.
// @Summary Get dashboard
// @Description Retrieve the caller's subscription, weekly hours, upcoming bookings, and payment state.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Dashboard data"
// @Failure 401 {object} response.Base
// @Router /api/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok {
		err := failure.Unauthorized("user id not found in context")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user id from context")

		response.WithError(w, err)

		return
	}

	dashboard, err := handler.service.Overview(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetStats reports the caller's monthly attendance and active booking counts.
// @Summary Get dashboard stats
// @Description Retrieve the caller's attendance count for the current month and active booking count.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Dashboard stats"
// @Failure 401 {object} response.Base
// @Router /api/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok {
		err := failure.Unauthorized("user id not found in context")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user id from context")

		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, stats)
}

package settings

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/settings/model/dto"
	"fauget/internal/domains/settings/service"
	"fauget/shared/constant"
	"fauget/shared/validator"
	"fauget/transport/http/middleware"
	"fauget/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Settings
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Settings, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/gym-settings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpdateSettings)
		routerGroup.Get("/holidays", handler.GetHolidays)
		routerGroup.Post("/holidays", handler.AddHoliday)
		routerGroup.Delete("/holidays/{id}", handler.DeleteHoliday)
	})
}

// GetSettings retrieves the gym configuration.
// @Summary Get gym settings
// @Description Retrieve the gym's opening hours, slot configuration, and capacity. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Gym settings"
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/gym-settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetSettings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gym settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gym settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings edits the gym configuration.
// @Summary Update gym settings
// @Description Update the gym's opening hours, slot configuration, or capacity. Developer only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Base "Gym settings updated successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Router /api/admin/gym-settings [put]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.UpdateSettings(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gym settings")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gym settings updated successfully by user " + actor)

	response.WithJSONMessage(w, http.StatusOK, settings, "Gym settings updated successfully")
}

// GetHolidays lists the configured holidays.
// @Summary Get holidays
// @Description Retrieve the gym's holidays ordered by date. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "List of holidays"
// @Failure 403 {object} response.Base
// @Router /api/admin/gym-settings/holidays [get]
// @Security BearerAuth
func (handler *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHolidays")
	defer scope.End()

	holidays, err := handler.service.GetHolidays(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get holidays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Holidays retrieved successfully")

	response.WithJSON(w, http.StatusOK, holidays)
}

// AddHoliday registers a holiday.
// @Summary Add a holiday
// @Description Register a date on which the gym is closed. Developer only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateHolidayRequest true "Create Holiday Request"
// @Success 201 {object} response.Base "Holiday added successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Router /api/admin/gym-settings/holidays [post]
// @Security BearerAuth
func (handler *Handler) AddHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHoliday")
	defer scope.End()

	req := dto.CreateHolidayRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	holiday, err := handler.service.AddHoliday(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add holiday")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Holiday added successfully by user " + actor)

	response.WithJSONMessage(w, http.StatusCreated, holiday, "Holiday added successfully")
}

// DeleteHoliday removes a holiday.
// @Summary Delete a holiday
// @Description Remove a holiday by its unique identifier. Developer only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 200 {object} response.Base "Holiday deleted successfully"
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/gym-settings/holidays/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHoliday")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteHoliday(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete holiday")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Holiday deleted successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Holiday deleted successfully")
}

package attendance

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/attendance/model"
	"fauget/internal/domains/attendance/model/dto"
	"fauget/internal/domains/attendance/service"
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
	service    service.Attendance
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Attendance, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/attendances", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Put("/check-out", handler.CheckOut)
		routerGroup.Get("/history", handler.GetHistory)
		routerGroup.Get("/weekly-hours", handler.GetWeeklyHours)
	})
}

// CheckIn opens a gym session for the authenticated user.
// @Summary Check in
// @Description Register the start of a gym session for the currently authenticated user.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest false "Check In Request"
// @Success 201 {object} response.Base "Checked in successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/attendances/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CheckInRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	attendance, err := handler.service.CheckIn(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checked in successfully for user " + userID)

	response.WithJSONMessage(w, http.StatusCreated, attendance, "Checked in successfully")
}

// CheckOut closes the authenticated user's open session.
// @Summary Check out
// @Description Register the end of the currently open gym session and compute its duration.
// @Tags Attendance
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Checked out successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/attendances/check-out [put]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	attendance, err := handler.service.CheckOut(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checked out successfully for user " + userID)

	response.WithJSONMessage(w, http.StatusOK, attendance, "Checked out successfully")
}

// GetHistory retrieves the authenticated user's attendance history.
// @Summary Get attendance history
// @Description Retrieve the gym sessions of the currently authenticated user, most recent first.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param attendance_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Base "List of attendances"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/attendances/history [get]
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
		queryParams.SortBy = model.FieldCheckIn
		queryParams.SortDir = gDto.SortDirDesc
	}

	attendanceDate := r.URL.Query().Get(model.FieldAttendanceDate)

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

	if attendanceDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAttendanceDate,
			Operator: gDto.FilterOperatorEq,
			Value:    attendanceDate,
			Table:    model.TableName,
		})
	}

	attendances, err := handler.service.History(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attendance history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attendance history retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, attendances)
}

// GetWeeklyHours retrieves the trailing-week gym-time rollup.
// @Summary Get weekly hours
// @Description Retrieve the authenticated user's total gym time over the last seven days.
// @Tags Attendance
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Weekly hours"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/attendances/weekly-hours [get]
// @Security BearerAuth
func (handler *Handler) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeeklyHours")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	weeklyHours, err := handler.service.WeeklyHours(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly hours retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, weeklyHours)
}

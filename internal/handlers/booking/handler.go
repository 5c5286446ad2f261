package booking

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/booking/model"
	"fauget/internal/domains/booking/model/dto"
	"fauget/internal/domains/booking/service"
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
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/available-slots", handler.GetAvailableSlots)
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Get("/my-bookings", handler.GetMyBookings)
		routerGroup.Get("/upcoming", handler.GetUpcoming)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// GetAvailableSlots annotates the day's slot catalog with live availability.
// @Summary Get available slots
// @Description Retrieve the day's bookable time slots with availability and remaining capacity.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Base "Slot availability for the date"
// @Failure 400 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/bookings/available-slots [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		err := failure.BadRequestFromString("date query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.GetAvailableSlots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// CreateBooking reserves a slot for the authenticated user.
// @Summary Create a new booking
// @Description Reserve a gym slot for the given date, start time, and duration.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Base "Booking created successfully"
// @Failure 400 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/bookings/create [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSONMessage(writer, http.StatusCreated, booking, "Booking created successfully")
}

// GetMyBookings retrieves the authenticated user's bookings.
// @Summary Get my bookings
// @Description Retrieve all bookings for the currently authenticated user with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (confirmed, cancelled, completed, no_show)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Success 200 {object} response.Base "List of user's bookings"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/bookings/my-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
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
		queryParams.SortBy = model.FieldBookingDate
	}

	status := r.URL.Query().Get(model.FieldStatus)
	bookingDate := r.URL.Query().Get(model.FieldBookingDate)

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

	if bookingDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingDate,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetMyBookings(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User bookings retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetUpcoming retrieves the user's upcoming confirmed bookings.
// @Summary Get upcoming bookings
// @Description Retrieve the authenticated user's confirmed bookings from today onwards.
// @Tags Booking
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of bookings to return"
// @Success 200 {object} response.Base "List of upcoming bookings"
// @Failure 401 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/bookings/upcoming [get]
// @Security BearerAuth
func (handler *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcoming")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	bookings, err := handler.service.GetUpcoming(ctx, userID, queryParams.Limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// CancelBooking cancels a booking owned by the authenticated user.
// @Summary Cancel a booking
// @Description Cancel a booking by its unique identifier. Only the owner may cancel, and only before the booked date has passed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Base "Booking cancelled successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

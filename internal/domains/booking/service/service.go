package service

import (
	"context"
	"fmt"
	"time"

	"fauget/config"
	"fauget/infras/otel"
	"fauget/internal/domains/booking/model"
	"fauget/internal/domains/booking/model/dto"
	"fauget/internal/domains/booking/repository"
	"fauget/shared"
	"fauget/shared/cache"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBooking  = "booking:gets"
	cacheCountBooking   = "booking:count"
	cacheAvailableSlots = "booking:slots"
)

type Booking interface {
	GetAvailableSlots(ctx context.Context, date string) (dto.AvailableSlotsResponse, error)
	IsSlotAvailable(ctx context.Context, date time.Time, startTime string) (bool, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	GetMyBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetUpcoming(ctx context.Context, userID string, limit int) ([]dto.BookingResponse, error)
	CountActive(ctx context.Context, userID string) (int, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func slotFilter(date time.Time, startTime string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorEq,
				Value:    startTime,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) confirmedCount(ctx context.Context, date time.Time, startTime string) (int, error) {
	return s.repo.Count(ctx, slotFilter(date, startTime)) //nolint:wrapcheck
}

// GetAvailableSlots annotates the fixed slot catalog with live availability
// for the given date.
func (s *serviceImpl) GetAvailableSlots(ctx context.Context, date string) (res dto.AvailableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.BookingDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailableSlots, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available slots")

		return res, nil
	}

	maxCapacity := s.cfg.Gym.MaxCapacityPerSlot
	res.Date = day.Format(constant.BookingDateFormat)
	res.Slots = make([]dto.SlotResponse, 0, len(model.SlotCatalog))

	for _, startTime := range model.SlotCatalog {
		count, err := s.confirmedCount(ctx, day, startTime)
		if err != nil {
			log.Error().Err(err).Str("startTime", startTime).Msg("failed to count confirmed bookings")

			return res, fmt.Errorf("failed to count confirmed bookings: %w", err)
		}

		res.Slots = append(res.Slots, dto.SlotResponse{
			StartTime: startTime,
			Available: count < maxCapacity,
			SpotsLeft: maxCapacity - count,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available slots to cache")
		}
	}()

	return res, nil
}

// IsSlotAvailable reports whether the slot still has capacity, equivalent to
// a single entry of GetAvailableSlots.
func (s *serviceImpl) IsSlotAvailable(ctx context.Context, date time.Time, startTime string) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsSlotAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err := s.confirmedCount(ctx, date, startTime)
	if err != nil {
		return false, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	return count < s.cfg.Gym.MaxCapacityPerSlot, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) //nolint:wrapcheck
	}

	if booking.BookingDate.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("cannot book a date in the past") //nolint:wrapcheck
	}

	available, err := s.IsSlotAvailable(ctx, booking.BookingDate, booking.StartTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if !available {
		return res, failure.BadRequestFromString("the selected slot is already full") //nolint:wrapcheck
	}

	duplicateFilter := slotFilter(booking.BookingDate, booking.StartTime)
	duplicateFilter.Filters = append(duplicateFilter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    user,
		Table:    model.TableName,
	})

	duplicate, err := s.repo.Exist(ctx, duplicateFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check duplicate booking")

		return res, fmt.Errorf("failed to check duplicate booking: %w", err)
	}

	if duplicate {
		return res, failure.BadRequestFromString("you already have a booking for this slot") //nolint:wrapcheck
	}

	// Conditional insert re-checks capacity inside the statement; the
	// pre-checks above only exist for precise error messages.
	inserted, err := s.repo.InsertConfirmed(ctx, booking, s.cfg.Gym.MaxCapacityPerSlot)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if !inserted {
		return res, failure.BadRequestFromString("the selected slot is already full") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailableSlots)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.UserID != user {
		return failure.Forbidden("you can only cancel your own bookings") //nolint:wrapcheck
	}

	if booking.BookingDate.Before(timezone.Today()) {
		return failure.BadRequestFromString("past bookings cannot be cancelled") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailableSlots)
	}()

	return nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetUpcoming(ctx context.Context, userID string, limit int) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUpcoming")
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
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Today(),
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldBookingDate,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		return res, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

// CountActive counts the user's confirmed bookings from today onwards.
func (s *serviceImpl) CountActive(ctx context.Context, userID string) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountActive")
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
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Today(),
				Table:    model.TableName,
			},
		},
	}

	count, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings")

		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}

	return count, nil
}

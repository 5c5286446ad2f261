package service

import (
	"context"
	"fmt"

	"fauget/config"
	"fauget/infras/otel"
	"fauget/internal/domains/settings/model"
	"fauget/internal/domains/settings/model/dto"
	"fauget/internal/domains/settings/repository"
	"fauget/shared"
	"fauget/shared/cache"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSettings = "settings:get"
	cacheGetHolidays = "settings:holidays"
)

type Settings interface {
	GetSettings(ctx context.Context) (dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
	GetHolidays(ctx context.Context) (dto.GetHolidaysResponse, error)
	AddHoliday(ctx context.Context, req dto.CreateHolidayRequest) (dto.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Settings
	holidayRepo repository.Holiday
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Settings, holidayRepo repository.Holiday, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:        repo,
		holidayRepo: holidayRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) getSingleton(ctx context.Context) (model.GymSettings, error) {
	settings, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		return settings, fmt.Errorf("failed to get gym settings: %w", err)
	}

	if settings.ID == constant.Empty {
		// The migration seeds the singleton; missing means the schema was
		// never migrated.
		return settings, failure.NotFound("gym settings not found") //nolint:wrapcheck
	}

	return settings, nil
}

func (s *serviceImpl) GetSettings(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for gym settings")

		return res, nil
	}

	settings, err := s.getSingleton(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gym settings")

		return res, err
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gym settings to cache")
		}
	}()

	return res, nil
}

// UpdateSettings merges the request into the singleton row. Day hours are
// merged per weekday so untouched days keep their windows.
func (s *serviceImpl) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings, err := s.getSingleton(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gym settings")

		return res, err
	}

	if len(req.Hours) > 0 {
		if settings.Hours == nil {
			settings.Hours = model.DefaultWeekHours()
		}

		for day, hours := range req.Hours {
			settings.Hours[day] = hours
		}
	}

	if req.SlotDuration != nil {
		settings.SlotDuration = *req.SlotDuration
	}

	if req.MaxCapacityPerSlot != nil {
		settings.MaxCapacityPerSlot = *req.MaxCapacityPerSlot
	}

	if len(req.AvailableSlots) > 0 {
		settings.AvailableSlots = req.AvailableSlots
	}

	updatedFields := map[string]any{
		model.FieldHours:              settings.Hours,
		model.FieldSlotDuration:       settings.SlotDuration,
		model.FieldMaxCapacityPerSlot: settings.MaxCapacityPerSlot,
		model.FieldAvailableSlots:     settings.AvailableSlots,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      actor,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(settings.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update gym settings")

		return res, fmt.Errorf("failed to update gym settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete gym settings from cache")
		}
	}()

	settings.ModifiedAt = timezone.Now()
	settings.ModifiedBy = actor

	res.FromModel(settings)

	return res, nil
}

func (s *serviceImpl) GetHolidays(ctx context.Context) (res dto.GetHolidaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHolidays")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHolidays, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetHolidays).Msg("cache hit for holidays")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldHolidayDate,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.holidayRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get holidays")

		return res, fmt.Errorf("failed to get holidays: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHolidays, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holidays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AddHoliday(ctx context.Context, req dto.CreateHolidayRequest) (res dto.HolidayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	holiday, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse holiday date")

		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") //nolint:wrapcheck
	}

	duplicateFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHolidayDate,
				Operator: gDto.FilterOperatorEq,
				Value:    holiday.HolidayDate,
				Table:    model.HolidayTableName,
			},
		},
	}

	duplicate, err := s.holidayRepo.Exist(ctx, duplicateFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check duplicate holiday")

		return res, fmt.Errorf("failed to check duplicate holiday: %w", err)
	}

	if duplicate {
		return res, failure.BadRequestFromString("a holiday already exists on that date") //nolint:wrapcheck
	}

	if err = s.holidayRepo.Insert(ctx, holiday); err != nil {
		log.Error().Err(err).Msg("failed to create holiday")

		return res, fmt.Errorf("failed to create holiday: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHolidays); err != nil {
			log.Error().Err(err).Msg("failed to delete holidays from cache")
		}
	}()

	res.FromModel(holiday)

	return res, nil
}

func (s *serviceImpl) DeleteHoliday(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.HolidayTableName)

	exist, err := s.holidayRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if holiday exists")

		return fmt.Errorf("failed to check if holiday exists: %w", err)
	}

	if !exist {
		return failure.NotFound("holiday not found") //nolint:wrapcheck
	}

	if err := s.holidayRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete holiday")

		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHolidays); err != nil {
			log.Error().Err(err).Msg("failed to delete holidays from cache")
		}
	}()

	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"fauget/config"
	"fauget/infras/otel"
	"fauget/internal/domains/attendance/model"
	"fauget/internal/domains/attendance/model/dto"
	"fauget/internal/domains/attendance/repository"
	"fauget/shared"
	"fauget/shared/cache"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAttendance = "attendance:gets"
	cacheCountAttendance  = "attendance:count"
	cacheWeeklyHours      = "attendance:weekly-hours"
)

const weeklyWindowDays = 7

type Attendance interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest, userID string) (dto.AttendanceResponse, error)
	CheckOut(ctx context.Context, userID string) (dto.AttendanceResponse, error)
	History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAttendancesResponse, error)
	WeeklyHours(ctx context.Context, userID string) (dto.WeeklyHoursResponse, error)
	MonthlyCount(ctx context.Context, userID string) (int, error)
}

type serviceImpl struct {
	repo  repository.Attendance
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Attendance, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Attendance {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func openSessionFilter(userID string) gDto.FilterGroup {
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
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest, userID string) (res dto.AttendanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	open, err := s.repo.Exist(ctx, openSessionFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check open attendance")

		return res, fmt.Errorf("failed to check open attendance: %w", err)
	}

	if open {
		return res, failure.BadRequestFromString("you are already checked in") //nolint:wrapcheck
	}

	attendance := req.ToModel(userID)

	if err = s.repo.Insert(ctx, attendance); err != nil {
		log.Error().Err(err).Msg("failed to create attendance")

		return res, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.invalidate(ctx, userID)

	res.FromModel(attendance)

	return res, nil
}

// CheckOut closes the user's open session and records its duration in
// minutes.
func (s *serviceImpl) CheckOut(ctx context.Context, userID string) (res dto.AttendanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	attendance, err := s.repo.Get(ctx, openSessionFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get open attendance")

		return res, fmt.Errorf("failed to get open attendance: %w", err)
	}

	if attendance.ID == constant.Empty {
		return res, failure.BadRequestFromString("you are not checked in") //nolint:wrapcheck
	}

	now := timezone.Now()
	duration := int(now.Sub(attendance.CheckIn) / time.Minute)

	updatedFields := map[string]any{
		model.FieldCheckOut:        now,
		model.FieldDurationMinutes: duration,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   userID,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(attendance.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to check out")

		return res, fmt.Errorf("failed to check out: %w", err)
	}

	s.invalidate(ctx, userID)

	attendance.CheckOut = &now
	attendance.DurationMinutes = duration

	res.FromModel(attendance)

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAttendancesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAttendance, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for attendances")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count attendances")

		return res, fmt.Errorf("failed to count attendances: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attendances")

		return res, fmt.Errorf("failed to get attendances: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save attendances to cache")
		}
	}()

	return res, nil
}

// WeeklyHours rolls up completed sessions from the trailing seven days.
func (s *serviceImpl) WeeklyHours(ctx context.Context, userID string) (res dto.WeeklyHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WeeklyHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheWeeklyHours, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for weekly hours")

		return res, nil
	}

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
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Now().AddDate(0, 0, -weeklyWindowDays),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly attendances")

		return res, fmt.Errorf("failed to get weekly attendances: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save weekly hours to cache")
		}
	}()

	return res, nil
}

// MonthlyCount counts the user's attendances since the start of the current
// month.
func (s *serviceImpl) MonthlyCount(ctx context.Context, userID string) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthlyCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

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
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startOfMonth,
				Table:    model.TableName,
			},
		},
	}

	count, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count monthly attendances")

		return 0, fmt.Errorf("failed to count monthly attendances: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheWeeklyHours, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete weekly hours from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAttendance)
		shared.InvalidateCaches(c, s.cache, cacheCountAttendance)
	}()
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fauget/infras/otel"
	"fauget/infras/postgres"
	"fauget/internal/domains/settings/model"
	gDto "fauget/shared/dto"
	gRepo "fauget/shared/repository"
)

type Settings interface {
	Insert(ctx context.Context, model model.GymSettings) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GymSettings, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type settingsImpl struct {
	gRepo.Repository[model.GymSettings]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSettings(db *postgres.Connection, otel otel.Otel) Settings {
	return &settingsImpl{
		Repository: gRepo.NewRepository[model.GymSettings](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Holiday interface {
	Insert(ctx context.Context, model model.Holiday) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Holiday, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Holiday, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type holidayImpl struct {
	gRepo.Repository[model.Holiday]
	db   *postgres.Connection
	otel otel.Otel
}

func NewHoliday(db *postgres.Connection, otel otel.Otel) Holiday {
	return &holidayImpl{
		Repository: gRepo.NewRepository[model.Holiday](model.HolidayEntityName, model.HolidayTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

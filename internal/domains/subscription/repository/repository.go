package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fauget/infras/otel"
	"fauget/infras/postgres"
	"fauget/internal/domains/subscription/model"
	gDto "fauget/shared/dto"
	gRepo "fauget/shared/repository"
)

type Subscription interface {
	Insert(ctx context.Context, model model.Subscription) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Subscription, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Subscription, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Subscription]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Subscription {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Subscription](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"fauget/infras/otel"
	"fauget/infras/postgres"
	"fauget/internal/domains/booking/model"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/logger"
	gRepo "fauget/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertConfirmed(ctx context.Context, booking model.Booking, maxCapacity int) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertConfirmed inserts a confirmed booking only while the slot still has
// capacity. The capacity check and the insert run as one statement, so two
// racing requests cannot both take the last spot. Returns false when the
// guard rejected the write.
func (repo *repositoryImpl) InsertConfirmed(ctx context.Context, booking model.Booking, maxCapacity int) (inserted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertConfirmed", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	columns := repo.InsertColumns
	placeholders := make([]string, len(columns))

	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s)
		SELECT %s
		WHERE (
			SELECT COUNT(*) FROM %s
			WHERE %s = :%s AND %s = :%s AND %s = '%s'
		) < %d`,
		model.TableName, strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		model.TableName,
		model.FieldBookingDate, model.FieldBookingDate,
		model.FieldStartTime, model.FieldStartTime,
		model.FieldStatus, model.StatusConfirmed,
		maxCapacity,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to insert confirmed booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return rows > 0, nil
}

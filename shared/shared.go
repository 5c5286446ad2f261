package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"fauget/shared/constant"
	"fauget/shared/dto"
	"fauget/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts into a colon-delimited cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from a prefix and arbitrary
// query-params values, so that each distinct query caches separately.
func BuildCacheKeyWithQuery(prefix string, params ...any) string {
	key := prefix

	for _, param := range params {
		encoded, err := json.Marshal(param)
		if err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to encode cache key params")

			continue
		}

		key = fmt.Sprintf("%s:%s", key, encoded)
	}

	return key
}

// CacheClearer is satisfied by shared/cache.RedisCache; declared here to avoid
// an import cycle between shared and shared/cache.
type CacheClearer interface {
	Clear(ctx context.Context, prefix string) error
}

// InvalidateCaches clears every cache entry under the given prefixes. Services
// call it in a goroutine after a successful write.
func InvalidateCaches(ctx context.Context, cache CacheClearer, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := cache.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

package model

import (
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldFullName     = "full_name"
	FieldHeightCm     = "height_cm"
	FieldWeightKg     = "weight_kg"
	FieldAddress      = "address"
	FieldProfilePhoto = "profile_photo"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	Role         string     `db:"role"`
	FullName     string     `db:"full_name"`
	HeightCm     *float64   `db:"height_cm"`
	WeightKg     *float64   `db:"weight_kg"`
	Address      *string    `db:"address"`
	ProfilePhoto *string    `db:"profile_photo"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}

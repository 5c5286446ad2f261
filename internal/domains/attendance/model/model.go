package model

import (
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "attendances"
	EntityName = "attendance"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldDurationMinutes = "duration_minutes"
	FieldAttendanceDate  = "attendance_date"
	FieldNotes           = "notes"
)

type Attendance struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	CheckIn         time.Time  `db:"check_in"`
	CheckOut        *time.Time `db:"check_out"`
	DurationMinutes int        `db:"duration_minutes"`
	AttendanceDate  time.Time  `db:"attendance_date"`
	Notes           *string    `db:"notes"`
	model.Metadata
}

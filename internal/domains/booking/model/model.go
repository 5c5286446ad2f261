package model

import (
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "gym_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldBookingDate = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldDuration    = "duration_hours"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
)

// SlotCatalog is the fixed list of bookable start times. The booking path
// works off this list; configured gym settings do not alter it.
var SlotCatalog = []string{"06:00", "08:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00"}

type Booking struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	BookingDate   time.Time `db:"booking_date"`
	StartTime     string    `db:"start_time"`
	EndTime       string    `db:"end_time"`
	DurationHours int       `db:"duration_hours"`
	Status        string    `db:"status"`
	Notes         string    `db:"notes"`
	model.Metadata
}

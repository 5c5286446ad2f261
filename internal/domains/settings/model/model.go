package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "gym_settings"
	EntityName = "gym_setting"

	FieldID                 = "id"
	FieldHours              = "hours"
	FieldSlotDuration       = "slot_duration"
	FieldMaxCapacityPerSlot = "max_capacity_per_slot"
	FieldAvailableSlots     = "available_slots"
)

const (
	HolidayTableName  = "holidays"
	HolidayEntityName = "holiday"

	FieldHolidayDate = "holiday_date"
	FieldName        = "name"
	FieldDescription = "description"
)

// DayHours is the opening window for a single weekday.
type DayHours struct {
	Open   string `json:"open"   validate:"omitempty,datetime=15:04"`
	Close  string `json:"close"  validate:"omitempty,datetime=15:04"`
	Closed bool   `json:"closed"`
}

// WeekHours maps weekday names to their opening windows, stored as JSONB.
type WeekHours map[string]DayHours

func (h WeekHours) Value() (driver.Value, error) {
	return json.Marshal(h) //nolint:wrapcheck
}

func (h *WeekHours) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, h) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), h) //nolint:wrapcheck
	case nil:
		*h = nil

		return nil
	default:
		return fmt.Errorf("unsupported type %T for WeekHours", src)
	}
}

// SlotList is the configured slot start times, stored as JSONB.
type SlotList []string

func (s SlotList) Value() (driver.Value, error) {
	return json.Marshal(s) //nolint:wrapcheck
}

func (s *SlotList) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, s) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), s) //nolint:wrapcheck
	case nil:
		*s = nil

		return nil
	default:
		return fmt.Errorf("unsupported type %T for SlotList", src)
	}
}

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DefaultWeekHours mirrors the opening windows the gym ships with.
func DefaultWeekHours() WeekHours {
	hours := WeekHours{}

	for _, day := range Weekdays {
		switch day {
		case "saturday":
			hours[day] = DayHours{Open: "08:00", Close: "20:00"}
		case "sunday":
			hours[day] = DayHours{Open: "08:00", Close: "14:00"}
		default:
			hours[day] = DayHours{Open: "06:00", Close: "22:00"}
		}
	}

	return hours
}

type GymSettings struct {
	ID                 string    `db:"id"`
	Hours              WeekHours `db:"hours"`
	SlotDuration       int       `db:"slot_duration"`
	MaxCapacityPerSlot int       `db:"max_capacity_per_slot"`
	AvailableSlots     SlotList  `db:"available_slots"`
	model.Metadata
}

type Holiday struct {
	ID          string    `db:"id"`
	HolidayDate time.Time `db:"holiday_date"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	model.Metadata
}

package dto

import (
	"fauget/internal/domains/settings/model"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

// UpdateSettingsRequest carries partial gym configuration edits.
type UpdateSettingsRequest struct {
	Hours              model.WeekHours `db:"hours"                 json:"hours,omitempty"              validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
	SlotDuration       *int            `db:"slot_duration"         json:"slotDuration,omitempty"       validate:"omitempty,gte=1,lte=4"`
	MaxCapacityPerSlot *int            `db:"max_capacity_per_slot" json:"maxCapacityPerSlot,omitempty" validate:"omitempty,gte=1,lte=100"`
	AvailableSlots     model.SlotList  `db:"available_slots"       json:"availableSlots,omitempty"     validate:"omitempty,dive,datetime=15:04"`
}

type SettingsResponse struct {
	ID                 string          `json:"id"`
	Hours              model.WeekHours `json:"hours"`
	SlotDuration       int             `json:"slotDuration"`
	MaxCapacityPerSlot int             `json:"maxCapacityPerSlot"`
	AvailableSlots     model.SlotList  `json:"availableSlots"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(settings model.GymSettings) {
	r.ID = settings.ID
	r.Hours = settings.Hours
	r.SlotDuration = settings.SlotDuration
	r.MaxCapacityPerSlot = settings.MaxCapacityPerSlot
	r.AvailableSlots = settings.AvailableSlots
	r.Metadata.FromModel(settings.Metadata)
}

type CreateHolidayRequest struct {
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=300"`
}

func (r *CreateHolidayRequest) ToModel(actor string) (model.Holiday, error) {
	date, err := timezone.Parse(constant.BookingDateFormat, r.Date)
	if err != nil {
		return model.Holiday{}, err //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.Holiday{
		ID:          uuid.NewString(),
		HolidayDate: date,
		Name:        r.Name,
		Description: r.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *HolidayResponse) FromModel(holiday model.Holiday) {
	r.ID = holiday.ID
	r.Date = holiday.HolidayDate.Format(constant.BookingDateFormat)
	r.Name = holiday.Name
	r.Description = holiday.Description
	r.Metadata.FromModel(holiday.Metadata)
}

type GetHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

func (r *GetHolidaysResponse) FromModels(models []model.Holiday) {
	r.Holidays = make([]HolidayResponse, len(models))
	for i, mod := range models {
		r.Holidays[i].FromModel(mod)
	}
}

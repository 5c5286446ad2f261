package dto

import (
	"fmt"
	"strconv"
	"strings"

	"fauget/internal/domains/booking/model"
	"fauget/shared"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Date      string `json:"date"      validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	Duration  int    `json:"duration"  validate:"required,gte=1"`
	Notes     string `json:"notes"     validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.BookingDateFormat, c.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid date: %w", err)
	}

	endTime, err := computeEndTime(c.StartTime, c.Duration)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        user,
		BookingDate:   bookingDate,
		StartTime:     c.StartTime,
		EndTime:       endTime,
		DurationHours: c.Duration,
		Status:        model.StatusConfirmed,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// computeEndTime adds the duration in hours to the start hour, keeping the
// minute component. 10:00 plus 2 hours yields "12:00".
func computeEndTime(startTime string, duration int) (string, error) {
	parts := strings.SplitN(startTime, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid start time %q", startTime)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid start time %q", startTime)
	}

	return fmt.Sprintf("%02d:%s", hour+duration, parts[1]), nil
}

type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Date = mod.BookingDate.Format(constant.BookingDateFormat)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.Duration = mod.DurationHours
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
	SpotsLeft int    `json:"spotsLeft"`
}

type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

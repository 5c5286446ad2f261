package dto

import (
	"fauget/internal/domains/attendance/model"
	"fauget/shared"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (r *CheckInRequest) ToModel(userID string) model.Attendance {
	now := timezone.Now()

	return model.Attendance{
		ID:             uuid.NewString(),
		UserID:         userID,
		CheckIn:        now,
		AttendanceDate: timezone.Today(),
		Notes:          r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        *string `json:"checkOut,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`
	Notes           *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *AttendanceResponse) FromModel(attendance model.Attendance) {
	r.ID = attendance.ID
	r.UserID = attendance.UserID
	r.CheckIn = timezone.Format(attendance.CheckIn, constant.DateFormat)

	if attendance.CheckOut != nil {
		checkOut := timezone.Format(*attendance.CheckOut, constant.DateFormat)
		r.CheckOut = &checkOut
	}

	r.DurationMinutes = attendance.DurationMinutes
	r.Date = attendance.AttendanceDate.Format(constant.BookingDateFormat)
	r.Notes = attendance.Notes
	r.Metadata.FromModel(attendance.Metadata)
}

type GetAttendancesResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetAttendancesResponse) FromModels(models []model.Attendance, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Attendances = make([]AttendanceResponse, len(models))
	for i, mod := range models {
		r.Attendances[i].FromModel(mod)
	}
}

// WeeklyHoursResponse is the rolled-up gym time over the trailing week.
type WeeklyHoursResponse struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"totalMinutes"`
	Sessions     int `json:"sessions"`
}

func (r *WeeklyHoursResponse) FromModels(models []model.Attendance) {
	totalMinutes := 0
	for _, mod := range models {
		totalMinutes += mod.DurationMinutes
	}

	r.Hours = totalMinutes / 60
	r.Minutes = totalMinutes % 60
	r.TotalMinutes = totalMinutes
	r.Sessions = len(models)
}

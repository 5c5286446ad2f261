package dto

import (
	"time"

	"fauget/internal/domains/subscription/model"
	"fauget/shared"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	PlanType string `json:"planType" validate:"required,oneof=classic online premium"`
	Duration int    `json:"duration,omitempty" validate:"omitempty,gte=1,lte=365"`
}

func (r *SubscribeRequest) ToModel(userID string, plan model.Plan) model.Subscription {
	duration := r.Duration
	if duration == 0 {
		duration = model.DefaultPlanDurationDays
	}

	now := timezone.Now()

	return model.Subscription{
		ID:            uuid.NewString(),
		UserID:        userID,
		PlanType:      plan.Type,
		PlanName:      plan.Name,
		Price:         plan.Price,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, duration),
		Status:        model.StatusActive,
		PaymentStatus: model.PaymentStatusUpToDate,
		AutoRenew:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type AssignPlanRequest struct {
	UserID   string `json:"userId"   validate:"required,uuid"`
	PlanType string `json:"planType" validate:"required,oneof=classic online premium"`
	Duration int    `json:"duration,omitempty" validate:"omitempty,gte=1,lte=365"`
}

func (r *AssignPlanRequest) ToModel(actor string, plan model.Plan) model.Subscription {
	duration := r.Duration
	if duration == 0 {
		duration = model.DefaultPlanDurationDays
	}

	now := timezone.Now()

	return model.Subscription{
		ID:            uuid.NewString(),
		UserID:        r.UserID,
		PlanType:      plan.Type,
		PlanName:      plan.Name,
		Price:         plan.Price,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, duration),
		Status:        model.StatusActive,
		PaymentStatus: model.PaymentStatusUpToDate,
		AutoRenew:     false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// UpdateSubscriptionRequest is the admin payload for editing a subscription.
type UpdateSubscriptionRequest struct {
	PlanType *string    `db:"plan_type" json:"planType,omitempty" validate:"omitempty,oneof=classic online premium"`
	PlanName *string    `db:"plan_name" json:"planName,omitempty" validate:"omitempty,min=2,max=100"`
	Price    *float64   `db:"price"     json:"price,omitempty"    validate:"omitempty,gte=0"`
	EndDate  *time.Time `db:"end_date"  json:"endDate,omitempty"`
	Status   *string    `db:"status"    json:"status,omitempty"   validate:"omitempty,oneof=active inactive cancelled expired"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=up_to_date pending overdue"`
}

type SubscriptionResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	PlanType      string  `json:"planType"`
	PlanName      string  `json:"planName"`
	Price         float64 `json:"price"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	AutoRenew     bool    `json:"autoRenew"`
	gDto.Metadata
}

func (r *SubscriptionResponse) FromModel(subscription model.Subscription) {
	r.ID = subscription.ID
	r.UserID = subscription.UserID
	r.PlanType = subscription.PlanType
	r.PlanName = subscription.PlanName
	r.Price = subscription.Price
	r.StartDate = subscription.StartDate.Format(constant.BookingDateFormat)
	r.EndDate = subscription.EndDate.Format(constant.BookingDateFormat)
	r.Status = subscription.Status
	r.PaymentStatus = subscription.PaymentStatus
	r.AutoRenew = subscription.AutoRenew
	r.Metadata.FromModel(subscription.Metadata)
}

type GetSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	TotalPage     int                    `json:"totalPage"`
	TotalData     int                    `json:"totalData"`
}

func (r *GetSubscriptionsResponse) FromModels(models []model.Subscription, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscriptions = make([]SubscriptionResponse, len(models))
	for i, mod := range models {
		r.Subscriptions[i].FromModel(mod)
	}
}

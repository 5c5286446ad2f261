package model

import (
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "subscriptions"
	EntityName = "subscription"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldPlanType      = "plan_type"
	FieldPlanName      = "plan_name"
	FieldPrice         = "price"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldAutoRenew     = "auto_renew"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"

	PaymentStatusUpToDate = "up_to_date"
	PaymentStatusPending  = "pending"
	PaymentStatusOverdue  = "overdue"
)

const (
	PlanTypeClassic = "classic"
	PlanTypeOnline  = "online"
	PlanTypePremium = "premium"

	DefaultPlanDurationDays = 30
)

type Plan struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// PlanCatalog is the fixed set of plans offered by the gym.
var PlanCatalog = map[string]Plan{
	PlanTypeClassic: {
		Type:        PlanTypeClassic,
		Name:        "Plan Classic - Fauget Fitness",
		Description: "Gym access three times a week with personalized workouts",
		Price:       30000,
	},
	PlanTypeOnline: {
		Type:        PlanTypeOnline,
		Name:        "Plan Online - Fauget Fitness",
		Description: "Personalized online routines with nutritional follow-up",
		Price:       50000,
	},
	PlanTypePremium: {
		Type:        PlanTypePremium,
		Name:        "Plan Premium - Fauget Fitness",
		Description: "Unlimited access with personal trainer and nutritionist",
		Price:       50000,
	},
}

type Subscription struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	PlanType      string    `db:"plan_type"`
	PlanName      string    `db:"plan_name"`
	Price         float64   `db:"price"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	AutoRenew     bool      `db:"auto_renew"`
	model.Metadata
}

// IsActive reports whether the subscription currently grants access.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == StatusActive && s.EndDate.After(now)
}

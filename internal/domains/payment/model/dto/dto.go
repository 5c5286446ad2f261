package dto

import (
	"fauget/internal/domains/payment/model"
	"fauget/shared"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

// PendingPaymentDays is how long a checkout payment stays payable before it
// counts as overdue.
const PendingPaymentDays = 7

type CheckoutRequest struct {
	PlanType string `json:"planType" validate:"required,oneof=classic online premium"`
}

func (r *CheckoutRequest) ToModel(userID string, amount float64, description string) model.Payment {
	now := timezone.Now()

	return model.Payment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		PaymentDate: now,
		DueDate:     now.AddDate(0, 0, PendingPaymentDays),
		Status:      model.StatusPending,
		Method:      model.MethodMercadoPago,
		Description: &description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// CheckoutResponse keeps the aggregator's field names so existing clients can
// follow the payment URL unchanged.
type CheckoutResponse struct {
	PaymentURL string `json:"payment_url"`
	Identifier string `json:"identifier"`
}

// CheckoutEvent is published to the payments topic on every checkout.
type CheckoutEvent struct {
	PaymentID    string  `json:"paymentId"`
	UserID       string  `json:"userId"`
	PlanType     string  `json:"planType"`
	Amount       float64 `json:"amount"`
	PreferenceID string  `json:"preferenceId"`
	CreatedAt    string  `json:"createdAt"`
}

type PaymentResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	SubscriptionID    *string `json:"subscriptionId,omitempty"`
	Amount            float64 `json:"amount"`
	PaymentDate       string  `json:"paymentDate"`
	DueDate           string  `json:"dueDate"`
	Status            string  `json:"status"`
	Method            string  `json:"method"`
	MercadoPagoID     *string `json:"mercadopagoId,omitempty"`
	MercadoPagoStatus *string `json:"mercadopagoStatus,omitempty"`
	Description       *string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.UserID = payment.UserID
	r.SubscriptionID = payment.SubscriptionID
	r.Amount = payment.Amount
	r.PaymentDate = timezone.Format(payment.PaymentDate, constant.DateFormat)
	r.DueDate = timezone.Format(payment.DueDate, constant.DateFormat)
	r.Status = payment.Status
	r.Method = payment.Method
	r.MercadoPagoID = payment.MercadoPagoID
	r.MercadoPagoStatus = payment.MercadoPagoStatus
	r.Description = payment.Description
	r.Metadata.FromModel(payment.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

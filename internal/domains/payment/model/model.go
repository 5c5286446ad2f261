package model

import (
	"time"

	"fauget/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID                = "id"
	FieldUserID            = "user_id"
	FieldSubscriptionID    = "subscription_id"
	FieldAmount            = "amount"
	FieldPaymentDate       = "payment_date"
	FieldDueDate           = "due_date"
	FieldStatus            = "status"
	FieldMethod            = "method"
	FieldMercadoPagoID     = "mercadopago_id"
	FieldMercadoPagoStatus = "mercadopago_status"
	FieldDescription       = "description"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"

	MethodMercadoPago = "mercadopago"
	MethodTransfer    = "transfer"
	MethodCash        = "cash"
	MethodOther       = "other"
)

type Payment struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	SubscriptionID    *string   `db:"subscription_id"`
	Amount            float64   `db:"amount"`
	PaymentDate       time.Time `db:"payment_date"`
	DueDate           time.Time `db:"due_date"`
	Status            string    `db:"status"`
	Method            string    `db:"method"`
	MercadoPagoID     *string   `db:"mercadopago_id"`
	MercadoPagoStatus *string   `db:"mercadopago_status"`
	Description       *string   `db:"description"`
	model.Metadata
}

package model

import "time"

// Payment is a persisted payment row. PlatformFee and ContractorPayout are
// computed once at creation and stored, never recomputed downstream.
type Payment struct {
	ID                    string     `json:"id,omitempty" bson:"_id,omitempty"`
	PaymentNumber         string     `json:"payment_number" bson:"payment_number"`
	InvoiceID             string     `json:"invoice_id" bson:"invoice_id"`
	JobRequestID          string     `json:"job_request_id" bson:"job_request_id"`
	ContractorID          string     `json:"contractor_id" bson:"contractor_id"`
	CustomerID            string     `json:"customer_id" bson:"customer_id"`
	Amount                float64    `json:"amount" bson:"amount"`
	PaymentMethod         string     `json:"payment_method" bson:"payment_method"`
	Status                string     `json:"status" bson:"status"`
	Currency              string     `json:"currency" bson:"currency"`
	PlatformFee           float64    `json:"platform_fee" bson:"platform_fee"`
	ContractorPayout      float64    `json:"contractor_payout" bson:"contractor_payout"`
	StripePaymentIntentID string     `json:"stripe_payment_intent_id,omitempty" bson:"stripe_payment_intent_id,omitempty"`
	PaymentDate           *time.Time `json:"payment_date,omitempty" bson:"payment_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at" bson:"created_at"`
}

type PaymentCreateRequest struct {
	InvoiceID     string  `json:"invoice_id" validate:"required"`
	JobRequestID  string  `json:"job_request_id" validate:"required"`
	ContractorID  string  `json:"contractor_id" validate:"required"`
	CustomerID    string  `json:"customer_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method"`
}

type PaymentStatusUpdateRequest struct {
	PaymentID             string `json:"paymentId" validate:"required"`
	Status                string `json:"status" validate:"required"`
	StripePaymentIntentID string `json:"stripe_payment_intent_id"`
}

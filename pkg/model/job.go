package model

import "time"

// JobRequest is a persisted job-request row written by the apps.
type JobRequest struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Address       string    `json:"address" bson:"address"`
	Location      string    `json:"location" bson:"location"`
	PreferredDate string    `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string    `json:"preferred_time" bson:"preferred_time"`
	Urgency       string    `json:"urgency" bson:"urgency"`
	Category      string    `json:"category" bson:"category"`
	BudgetMin     *float64  `json:"budget_min" bson:"budget_min"`
	BudgetMax     *float64  `json:"budget_max" bson:"budget_max"`
	CustomerName  string    `json:"customer_name" bson:"customer_name"`
	CustomerID    string    `json:"customer_id" bson:"customer_id"`
	CustomerEmail string    `json:"customer_email" bson:"customer_email"`
	CustomerPhone string    `json:"customer_phone" bson:"customer_phone"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// JobDetails is the defaulted read shape contractors see when quoting.
type JobDetails struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Address       string   `json:"address"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Urgency       string   `json:"urgency"`
	Category      string   `json:"category"`
	BudgetMin     *float64 `json:"budget_min"`
	BudgetMax     *float64 `json:"budget_max"`
	CustomerName  string   `json:"customer_name"`
	CustomerID    string   `json:"customer_id"`
	CustomerEmail string   `json:"customer_email"`
	CustomerPhone string   `json:"customer_phone"`
	Status        string   `json:"status"`
}

type JobStatusUpdateRequest struct {
	JobRequestID string `json:"jobRequestId" validate:"required"`
	Status       string `json:"status" validate:"required"`
}

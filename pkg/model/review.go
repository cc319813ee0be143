package model

import "time"

type Review struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	ContractorID string    `json:"contractor_id" bson:"contractor_id"`
	CustomerID   string    `json:"customer_id" bson:"customer_id"`
	JobRequestID string    `json:"job_request_id,omitempty" bson:"job_request_id,omitempty"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment" bson:"comment"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

package model

import "time"

// Notification is a persisted in-app notification row. Metadata and
// ActionURL keep their explicit nulls so clients can distinguish "absent"
// from "empty".
type Notification struct {
	ID        string         `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string         `json:"user_id" bson:"user_id"`
	Type      string         `json:"type" bson:"type"`
	Title     string         `json:"title" bson:"title"`
	Message   string         `json:"message" bson:"message"`
	Metadata  map[string]any `json:"metadata" bson:"metadata"`
	ActionURL *string        `json:"action_url" bson:"action_url"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// NotificationRequest is the inbound create payload. Type is restricted to
// the closed set understood by the mobile clients.
type NotificationRequest struct {
	UserID    string         `json:"userId" validate:"required"`
	Type      string         `json:"type" validate:"required,oneof=job quote message review payment system"`
	Title     string         `json:"title" validate:"required"`
	Message   string         `json:"message" validate:"required"`
	Data      map[string]any `json:"data"`
	ActionURL string         `json:"actionUrl"`
}

package service

import (
	"context"
	"io"
	"testing"

	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type fakeNotificationRepo struct {
	inserts   int
	lastRow   *model.Notification
	lastLimit int
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *model.Notification) error {
	f.inserts++
	f.lastRow = notification
	return nil
}

func (f *fakeNotificationRepo) FindByUser(_ context.Context, userID string, limit int) ([]*model.Notification, error) {
	f.lastLimit = limit
	return []*model.Notification{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func TestSendRejectsUnknownTypeBeforePersistence(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil, testConfig())

	_, err := svc.Send(context.Background(), &model.NotificationRequest{
		UserID:  "u1",
		Type:    "marketing",
		Title:   "Hello",
		Message: "World",
	})
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() != 400 {
		t.Fatalf("status = %d, want 400", appErr.StatusCode())
	}
	if appErr.Message != "Invalid notification type" {
		t.Errorf("message = %q, want Invalid notification type", appErr.Message)
	}
	if repo.inserts != 0 {
		t.Error("unknown type must never reach the store")
	}
}

func TestSendRequiresAllFields(t *testing.T) {
	tests := []struct {
		name string
		req  model.NotificationRequest
	}{
		{"missing user", model.NotificationRequest{Type: "job", Title: "t", Message: "m"}},
		{"missing type", model.NotificationRequest{UserID: "u1", Title: "t", Message: "m"}},
		{"missing title", model.NotificationRequest{UserID: "u1", Type: "job", Message: "m"}},
		{"missing message", model.NotificationRequest{UserID: "u1", Type: "job", Title: "t"}},
	}

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), &tt.req)
			if apperrors.AsAppError(err).StatusCode() != 400 {
				t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
			}
		})
	}
	if repo.inserts != 0 {
		t.Error("invalid payloads must not be persisted")
	}
}

func TestSendPersistsRowWithNulls(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil, testConfig())

	notification, err := svc.Send(context.Background(), &model.NotificationRequest{
		UserID:  "u1",
		Type:    "quote",
		Title:   "New quote",
		Message: "A contractor sent you a quote",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if notification.Metadata != nil {
		t.Error("absent data must stay null")
	}
	if notification.ActionURL != nil {
		t.Error("absent actionUrl must stay null")
	}
	if notification.ID == "" {
		t.Error("expected generated id")
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
}

func TestSendKeepsActionURL(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil, testConfig())

	notification, err := svc.Send(context.Background(), &model.NotificationRequest{
		UserID:    "u1",
		Type:      "payment",
		Title:     "Paid",
		Message:   "Payment received",
		Data:      map[string]any{"payment_id": "pay-1"},
		ActionURL: "dandee://payments/pay-1",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if notification.ActionURL == nil || *notification.ActionURL != "dandee://payments/pay-1" {
		t.Errorf("ActionURL = %v, want deep link", notification.ActionURL)
	}
	if notification.Metadata["payment_id"] != "pay-1" {
		t.Error("metadata must carry the request data")
	}
}

func TestListClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, 50},
		{"negative", -3, 50},
		{"over window", 500, 50},
		{"in window", 10, 10},
	}

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.List(context.Background(), "u1", tt.limit); err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if repo.lastLimit != tt.want {
				t.Errorf("limit = %d, want %d", repo.lastLimit, tt.want)
			}
		})
	}
}

func TestListWithoutStore(t *testing.T) {
	svc := NewNotificationService(nil, nil, nil, testConfig())

	_, err := svc.List(context.Background(), "u1", 10)
	if apperrors.AsAppError(err).StatusCode() != 503 {
		t.Errorf("status = %d, want 503", apperrors.AsAppError(err).StatusCode())
	}
}

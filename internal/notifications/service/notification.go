package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dandee/internal/notifications/repository"
	"dandee/internal/push"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/events"
	"dandee/pkg/model"
)

const fanoutTimeout = 10 * time.Second

type NotificationService interface {
	Send(ctx context.Context, req *model.NotificationRequest) (*model.Notification, error)
	List(ctx context.Context, userID string, limit int) ([]*model.Notification, error)
}

type notificationService struct {
	repo       repository.NotificationRepository
	dispatcher push.Dispatcher
	publisher  *events.Publisher
	validate   *validator.Validate
	cfg        *config.Config
}

func NewNotificationService(
	repo repository.NotificationRepository,
	dispatcher push.Dispatcher,
	publisher *events.Publisher,
	cfg *config.Config,
) NotificationService {
	return &notificationService{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		cfg:        cfg,
	}
}

// Send validates the payload before any store call: an unknown type must
// never reach persistence. The row is the response; push delivery and the
// domain event run afterwards and cannot fail the request.
func (s *notificationService) Send(ctx context.Context, req *model.NotificationRequest) (*model.Notification, error) {
	if s.repo == nil {
		return nil, apperrors.Unavailable("Notification storage is not configured")
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Type" && fe.Tag() == "oneof" {
					return nil, apperrors.InvalidInput("Invalid notification type")
				}
			}
		}
		return nil, apperrors.InvalidInput("Missing required notification fields")
	}

	notification := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Metadata:  req.Data,
		CreatedAt: time.Now().UTC(),
	}
	if req.ActionURL != "" {
		notification.ActionURL = &req.ActionURL
	}

	if err := s.repo.Insert(ctx, notification); err != nil {
		s.cfg.Log.Error("Failed to insert notification", "user_id", req.UserID, "error", err)
		return nil, apperrors.Internal("Failed to create notification", err)
	}

	s.cfg.Log.Info("Notification created",
		"notification_id", notification.ID,
		"user_id", notification.UserID,
		"type", notification.Type,
	)

	go s.afterPersist(notification)

	return notification, nil
}

// afterPersist pushes to the recipient and emits the domain event on a
// detached context so a finished request never cancels delivery.
func (s *notificationService) afterPersist(notification *model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), fanoutTimeout)
	defer cancel()

	if s.dispatcher != nil && s.dispatcher.IsConfigured() {
		target := push.Target{UserID: notification.UserID}
		msg := push.Notification{
			Title: notification.Title,
			Body:  notification.Message,
			Data:  stringifyMetadata(notification.Metadata),
		}
		if notification.ActionURL != nil {
			msg.URL = *notification.ActionURL
		}

		result := s.dispatcher.Send(ctx, target, msg)
		if !result.Success {
			s.cfg.Log.Warn("Push delivery failed for notification",
				"notification_id", notification.ID,
				"user_id", notification.UserID,
				"error", result.Error,
			)
		}
	}

	s.publisher.Publish(ctx, notification.UserID, "notification.created", notification)
}

func (s *notificationService) List(ctx context.Context, userID string, limit int) ([]*model.Notification, error) {
	if s.repo == nil {
		return nil, apperrors.Unavailable("Notification storage is not configured")
	}
	if userID == "" {
		return nil, apperrors.InvalidInput("userId is required")
	}

	notifications, err := s.repo.FindByUser(ctx, userID, config.NormalizeListLimit(limit))
	if err != nil {
		s.cfg.Log.Error("Failed to fetch notifications", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to fetch notifications", err)
	}
	return notifications, nil
}

func stringifyMetadata(metadata map[string]any) map[string]string {
	if len(metadata) == 0 {
		return nil
	}
	data := make(map[string]string, len(metadata))
	for key, value := range metadata {
		data[key] = fmt.Sprint(value)
	}
	return data
}

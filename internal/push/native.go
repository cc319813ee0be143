package push

import (
	"context"
	"fmt"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
	"google.golang.org/api/option"

	"dandee/pkg/config"
	"dandee/pkg/logger"
)

const androidChannelID = "dandee_notifications"

// Native delivers directly to Apple and Google. Either leg may be absent;
// a send for a platform without a configured leg is a soft failure, not a
// transport error.
type Native struct {
	log   *logger.Logger
	apns  *apns2.Client
	fcm   *messaging.Client
	topic string
}

func NewNative(log *logger.Logger, cfg *config.Config) *Native {
	n := &Native{log: log, topic: cfg.APNSTopic}

	if cfg.APNSKeyFile != "" {
		authKey, err := token.AuthKeyFromFile(cfg.APNSKeyFile)
		if err != nil {
			log.Error("failed to load APNs signing key, iOS push disabled",
				"key_file", cfg.APNSKeyFile, "error", err)
		} else {
			c := apns2.NewTokenClient(&token.Token{
				AuthKey: authKey,
				KeyID:   cfg.APNSKeyID,
				TeamID:  cfg.APNSTeamID,
			})
			if cfg.APNSProduction {
				c = c.Production()
			} else {
				c = c.Development()
			}
			n.apns = c
			log.Info("APNs client initialized", "topic", n.topic, "production", cfg.APNSProduction)
		}
	} else {
		log.Warn("APNs key not configured, iOS push disabled")
	}

	if cfg.FCMCredentialsFile != "" {
		ctx := context.Background()
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FCMCredentialsFile))
		if err != nil {
			log.Error("failed to initialize Firebase app, Android push disabled", "error", err)
		} else if client, err := app.Messaging(ctx); err != nil {
			log.Error("failed to initialize FCM messaging client, Android push disabled", "error", err)
		} else {
			n.fcm = client
			log.Info("FCM client initialized")
		}
	} else {
		log.Warn("FCM credentials not configured, Android push disabled")
	}

	return n
}

func (s *Native) IsConfigured() bool {
	return s.apns != nil || s.fcm != nil
}

func (s *Native) Send(ctx context.Context, target Target, n Notification) Result {
	switch strings.ToLower(target.Platform) {
	case "ios":
		return s.sendAPNs(ctx, target, n)
	case "android":
		return s.sendFCM(ctx, target, n)
	default:
		return failure(target.UserID, "native", fmt.Sprintf("unsupported platform: %s", target.Platform))
	}
}

func (s *Native) SendBulk(ctx context.Context, targets []Target, n Notification) BulkResult {
	return fanOut(ctx, s, targets, n)
}

func (s *Native) sendAPNs(ctx context.Context, target Target, n Notification) Result {
	if s.apns == nil {
		return failure(target.UserID, "apns", "APNs is not configured")
	}

	p := payload.NewPayload().
		AlertTitle(n.Title).
		AlertBody(n.Body).
		Badge(badgeOrDefault(n.Badge)).
		Sound(soundOrDefault(n.Sound))
	for key, value := range n.Data {
		p.Custom(key, value)
	}
	if n.URL != "" {
		p.Custom("url", n.URL)
	}

	res, err := s.apns.PushWithContext(ctx, &apns2.Notification{
		DeviceToken: target.DeviceToken,
		Topic:       s.topic,
		Expiration:  time.Now().Add(time.Hour),
		Payload:     p,
	})
	if err != nil {
		s.log.Error("APNs delivery failed", "user_id", target.UserID, "error", err)
		return failure(target.UserID, "apns", err.Error())
	}
	if !res.Sent() {
		s.log.Warn("APNs rejected notification",
			"user_id", target.UserID, "status", res.StatusCode, "reason", res.Reason)
		return failure(target.UserID, "apns", res.Reason)
	}

	return Result{UserID: target.UserID, Success: true, Provider: "apns", MessageID: res.ApnsID}
}

func (s *Native) sendFCM(ctx context.Context, target Target, n Notification) Result {
	if s.fcm == nil {
		return failure(target.UserID, "fcm", "FCM is not configured")
	}

	data := make(map[string]string, len(n.Data)+1)
	for key, value := range n.Data {
		data[key] = value
	}
	if n.URL != "" {
		data["url"] = n.URL
	}

	id, err := s.fcm.Send(ctx, &messaging.Message{
		Token: target.DeviceToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: androidChannelID,
				Sound:     soundOrDefault(n.Sound),
			},
		},
	})
	if err != nil {
		s.log.Error("FCM delivery failed", "user_id", target.UserID, "error", err)
		return failure(target.UserID, "fcm", err.Error())
	}

	return Result{UserID: target.UserID, Success: true, Provider: "fcm", MessageID: id}
}

// Shutdown drains in-flight HTTP/2 connections to APNs.
func (s *Native) Shutdown() {
	if s.apns != nil {
		s.apns.HTTPClient.CloseIdleConnections()
	}
}

func badgeOrDefault(badge *int) int {
	if badge != nil {
		return *badge
	}
	return 1
}

func soundOrDefault(sound string) string {
	if sound != "" {
		return sound
	}
	return "default"
}

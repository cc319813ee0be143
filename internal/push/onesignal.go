package push

import (
	"context"
	"fmt"
	"net/http"

	"dandee/pkg/client"
	"dandee/pkg/logger"
)

// OneSignal delivers through the OneSignal REST API, addressing users by
// external user ID so device tokens never transit this service.
type OneSignal struct {
	log     *logger.Logger
	http    *client.HttpClient
	appID   string
	restKey string
}

func NewOneSignal(log *logger.Logger, httpClient *client.HttpClient, appID, restKey string) *OneSignal {
	if appID == "" || restKey == "" {
		log.Warn("OneSignal credentials not configured, push disabled")
	}
	return &OneSignal{log: log, http: httpClient, appID: appID, restKey: restKey}
}

func (s *OneSignal) IsConfigured() bool {
	return s.appID != "" && s.restKey != ""
}

type oneSignalResponse struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
	Errors     any    `json:"errors"`
}

func (s *OneSignal) Send(ctx context.Context, target Target, n Notification) Result {
	resp, err := s.create(ctx, []string{target.UserID}, n)
	if err != nil {
		return failure(target.UserID, "onesignal", err.Error())
	}
	return Result{UserID: target.UserID, Success: true, Provider: "onesignal", MessageID: resp.ID}
}

// SendBulk addresses every user in a single API call. OneSignal fans out
// server-side and reports how many recipients it accepted.
func (s *OneSignal) SendBulk(ctx context.Context, targets []Target, n Notification) BulkResult {
	bulk := BulkResult{Total: len(targets)}
	if len(targets) == 0 {
		return bulk
	}

	userIDs := make([]string, len(targets))
	for i, target := range targets {
		userIDs[i] = target.UserID
	}

	resp, err := s.create(ctx, userIDs, n)
	if err != nil {
		bulk.Failed = bulk.Total
		for _, id := range userIDs {
			bulk.Results = append(bulk.Results, failure(id, "onesignal", err.Error()))
		}
		return bulk
	}

	accepted := resp.Recipients
	if accepted > bulk.Total {
		accepted = bulk.Total
	}
	bulk.Successful = accepted
	bulk.Failed = bulk.Total - accepted
	for _, id := range userIDs {
		bulk.Results = append(bulk.Results, Result{
			UserID: id, Success: true, Provider: "onesignal", MessageID: resp.ID,
		})
	}
	return bulk
}

func (s *OneSignal) create(ctx context.Context, userIDs []string, n Notification) (*oneSignalResponse, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("OneSignal is not configured")
	}

	body := map[string]any{
		"app_id":                        s.appID,
		"include_external_user_ids":     userIDs,
		"channel_for_external_user_ids": "push",
		"headings":                      map[string]string{"en": n.Title},
		"contents":                      map[string]string{"en": n.Body},
	}
	if len(n.Data) > 0 {
		body["data"] = n.Data
	}
	if n.URL != "" {
		body["url"] = n.URL
		body["web_url"] = n.URL
		body["app_url"] = n.URL
	}

	resp, err := s.http.POST(ctx, "/notifications", body, map[string]string{
		"Authorization": "Basic " + s.restKey,
	})
	if err != nil {
		s.log.Error("OneSignal request failed", "error", err)
		return nil, err
	}

	var decoded oneSignalResponse
	if err := resp.DecodeJSON(&decoded); err != nil {
		s.log.Error("failed to decode OneSignal response", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("invalid OneSignal response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || decoded.ID == "" {
		s.log.Warn("OneSignal rejected notification", "status", resp.StatusCode, "errors", decoded.Errors)
		return nil, fmt.Errorf("OneSignal rejected notification (status %d)", resp.StatusCode)
	}

	return &decoded, nil
}

func (s *OneSignal) Shutdown() {}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"dandee/internal/notifications/service"
	"dandee/internal/push"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type NotificationHandler struct {
	service    service.NotificationService
	dispatcher push.Dispatcher
	validate   *validator.Validate
	log        *logger.Logger
}

func NewNotificationHandler(service service.NotificationService, dispatcher push.Dispatcher, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service:    service,
		dispatcher: dispatcher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        log,
	}
}

type pushSendRequest struct {
	UserID      string            `json:"userId" validate:"required"`
	DeviceToken string            `json:"deviceToken"`
	Platform    string            `json:"platform"`
	Title       string            `json:"title" validate:"required"`
	Body        string            `json:"body" validate:"required"`
	Data        map[string]string `json:"data"`
	URL         string            `json:"url"`
	Badge       *int              `json:"badge"`
	Sound       string            `json:"sound"`
}

type pushBulkRequest struct {
	Targets []push.Target     `json:"targets" validate:"required,min=1"`
	Title   string            `json:"title" validate:"required"`
	Body    string            `json:"body" validate:"required"`
	Data    map[string]string `json:"data"`
	URL     string            `json:"url"`
}

func (h *NotificationHandler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "decode", "error", writeErr)
		}
		return false
	}
	return true
}

func (h *NotificationHandler) write(w http.ResponseWriter, handler string, data any, err error) {
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
		}
		return
	}
	if writeErr := httputil.WriteSuccess(w, data); writeErr != nil {
		h.log.Error("failed to write success response", "handler", handler, "error", writeErr)
	}
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.NotificationRequest
	if !h.decode(w, r, &req) {
		return
	}
	notification, err := h.service.Send(r.Context(), &req)
	if err != nil {
		h.write(w, "Send", nil, err)
		return
	}
	h.write(w, "Send", map[string]any{"success": true, "notification": notification}, nil)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			h.write(w, "List", nil, apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", limitStr)))
			return
		}
	}

	notifications, err := h.service.List(r.Context(), ps.ByName("userId"), limit)
	if err != nil {
		h.write(w, "List", nil, err)
		return
	}
	h.write(w, "List", map[string]any{"success": true, "notifications": notifications}, nil)
}

// SendPush exposes the configured dispatcher directly. Delivery failures are
// soft: the response reports them without a failing status.
func (h *NotificationHandler) SendPush(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req pushSendRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.write(w, "SendPush", nil, apperrors.InvalidInput("userId, title and body are required"))
		return
	}

	result := h.dispatcher.Send(r.Context(), push.Target{
		UserID:      req.UserID,
		DeviceToken: req.DeviceToken,
		Platform:    req.Platform,
	}, push.Notification{
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
		URL:   req.URL,
		Badge: req.Badge,
		Sound: req.Sound,
	})

	h.write(w, "SendPush", result, nil)
}

func (h *NotificationHandler) SendBulkPush(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req pushBulkRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.write(w, "SendBulkPush", nil, apperrors.InvalidInput("targets, title and body are required"))
		return
	}

	bulk := h.dispatcher.SendBulk(r.Context(), req.Targets, push.Notification{
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
		URL:   req.URL,
	})

	h.write(w, "SendBulkPush", bulk, nil)
}

func (h *NotificationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/notifications/send", h.Send)
	router.GET("/api/notifications/:userId", h.List)

	router.POST("/api/push/send", h.SendPush)
	router.POST("/api/push/send-bulk", h.SendBulkPush)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dandee/internal/scheduling/service"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
)

type SchedulingHandler struct {
	service service.SchedulingService
	log     *logger.Logger
}

func NewSchedulingHandler(service service.SchedulingService, log *logger.Logger) *SchedulingHandler {
	return &SchedulingHandler{
		service: service,
		log:     log,
	}
}

func (h *SchedulingHandler) CreateFromQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		ScheduledJob map[string]any `json:"scheduledJob"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateFromQuote", "error", writeErr)
		}
		return
	}

	stored, err := h.service.CreateFromQuote(r.Context(), req.ScheduledJob)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateFromQuote", "error", writeErr)
		}
		return
	}

	if writeErr := httputil.WriteSuccess(w, map[string]any{
		"success":      true,
		"scheduledJob": stored,
	}); writeErr != nil {
		h.log.Error("failed to write success response", "handler", "CreateFromQuote", "error", writeErr)
	}
}

func (h *SchedulingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/scheduling/create-from-quote", h.CreateFromQuote)
}

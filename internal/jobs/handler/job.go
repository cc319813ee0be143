package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dandee/internal/jobs/service"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type JobHandler struct {
	service service.JobService
	log     *logger.Logger
}

func NewJobHandler(service service.JobService, log *logger.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		log:     log,
	}
}

func (h *JobHandler) write(w http.ResponseWriter, handler string, data any, err error) {
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

func (h *JobHandler) Details(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	details, err := h.service.Details(r.Context(), ps.ByName("id"))
	if err != nil {
		h.write(w, "Details", nil, err)
		return
	}
	h.write(w, "Details", map[string]any{"success": true, "job": details}, nil)
}

func (h *JobHandler) Location(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	location, err := h.service.Location(r.Context(), ps.ByName("id"))
	if err != nil {
		h.write(w, "Location", nil, err)
		return
	}
	h.write(w, "Location", map[string]any{
		"success":     true,
		"jobId":       location.JobID,
		"address":     location.Address,
		"location":    location.Location,
		"fullAddress": location.FullAddress,
	}, nil)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.JobStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "UpdateStatus", "error", writeErr)
		}
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), &req)
	if err != nil {
		h.write(w, "UpdateStatus", nil, err)
		return
	}
	h.write(w, "UpdateStatus", map[string]any{"success": true, "jobRequest": updated}, nil)
}

func (h *JobHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/jobs/:id/details", h.Details)
	router.GET("/api/jobs/:id/location", h.Location)
	router.POST("/api/jobs/update-status", h.UpdateStatus)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dandee/internal/profiles/service"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
	"dandee/pkg/model"
	"dandee/pkg/sanitizer"
)

type ProfileHandler struct {
	profiles service.ProfileService
	photos   service.PhotoService
	log      *logger.Logger
}

func NewProfileHandler(profiles service.ProfileService, photos service.PhotoService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		photos:   photos,
		log:      log,
	}
}

func (h *ProfileHandler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
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

func (h *ProfileHandler) write(w http.ResponseWriter, handler string, data any, err error) {
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

func (h *ProfileHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.OnboardingRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.profiles.CompleteOnboarding(r.Context(), &req)
	h.write(w, "CompleteOnboarding", resp, err)
}

func (h *ProfileHandler) upsertProfile(w http.ResponseWriter, r *http.Request, profileType sanitizer.ProfileType) {
	var req model.ProfileUpsertRequest
	if !h.decode(w, r, &req) {
		return
	}
	stored, err := h.profiles.UpsertProfile(r.Context(), profileType, &req)
	if err != nil {
		h.write(w, "UpsertProfile", nil, err)
		return
	}
	h.write(w, "UpsertProfile", map[string]any{"success": true, "profile": stored}, nil)
}

func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params, profileType sanitizer.ProfileType) {
	stored, err := h.profiles.GetProfile(r.Context(), profileType, ps.ByName("userId"))
	if err != nil {
		h.write(w, "GetProfile", nil, err)
		return
	}
	h.write(w, "GetProfile", map[string]any{"success": true, "profile": stored}, nil)
}

func (h *ProfileHandler) UpsertCustomerProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.upsertProfile(w, r, sanitizer.Customer)
}

func (h *ProfileHandler) UpsertContractorProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.upsertProfile(w, r, sanitizer.Contractor)
}

func (h *ProfileHandler) GetCustomerProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.getProfile(w, r, ps, sanitizer.Customer)
}

func (h *ProfileHandler) GetContractorProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.getProfile(w, r, ps, sanitizer.Contractor)
}

func (h *ProfileHandler) UploadProfilePhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PhotoUploadRequest
	if !h.decode(w, r, &req) {
		return
	}
	upload, err := h.photos.Upload(r.Context(), &req)
	if err != nil {
		h.write(w, "UploadProfilePhoto", nil, err)
		return
	}
	h.write(w, "UploadProfilePhoto", map[string]any{
		"success": true,
		"url":     upload.URL,
		"path":    upload.Path,
	}, nil)
}

func (h *ProfileHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/onboarding/complete", h.CompleteOnboarding)
	router.POST("/api/onboarding/upload-profile-photo", h.UploadProfilePhoto)

	router.POST("/api/customers/profile", h.UpsertCustomerProfile)
	router.GET("/api/customers/profile/:userId", h.GetCustomerProfile)

	router.POST("/api/contractors/profile", h.UpsertContractorProfile)
	router.GET("/api/contractors/profile/:userId", h.GetContractorProfile)
}

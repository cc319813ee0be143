package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dandee/internal/reviews/service"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// ListByContractor responds with a plain array, unlike the wrapped shapes
// elsewhere; the contractor app consumes it directly.
func (h *ReviewHandler) ListByContractor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviews, err := h.service.ListByContractor(r.Context(), ps.ByName("contractorId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListByContractor", "error", writeErr)
		}
		return
	}

	if writeErr := httputil.WriteSuccess(w, reviews); writeErr != nil {
		h.log.Error("failed to write success response", "handler", "ListByContractor", "error", writeErr)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/reviews/contractor/:contractorId", h.ListByContractor)
}

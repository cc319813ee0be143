package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dandee/internal/payments/service"
	"dandee/pkg/httputil"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type PaymentHandler struct {
	stripe   service.StripeService
	payments service.PaymentService
	log      *logger.Logger
}

func NewPaymentHandler(stripe service.StripeService, payments service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		stripe:   stripe,
		payments: payments,
		log:      log,
	}
}

func (h *PaymentHandler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
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

func (h *PaymentHandler) write(w http.ResponseWriter, handler string, data any, err error) {
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

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentIntentRequest
	if !h.decode(w, r, &req) {
		return
	}
	intent, err := h.stripe.CreateIntent(r.Context(), &req)
	h.write(w, "CreateIntent", intent, err)
}

func (h *PaymentHandler) CreateIntentWithFee(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentIntentWithFeeRequest
	if !h.decode(w, r, &req) {
		return
	}
	intent, err := h.stripe.CreateIntentWithFee(r.Context(), &req)
	h.write(w, "CreateIntentWithFee", intent, err)
}

func (h *PaymentHandler) ConfirmIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentIntentConfirmRequest
	if !h.decode(w, r, &req) {
		return
	}
	intent, err := h.stripe.ConfirmIntent(r.Context(), &req)
	h.write(w, "ConfirmIntent", intent, err)
}

func (h *PaymentHandler) CancelIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentIntentCancelRequest
	if !h.decode(w, r, &req) {
		return
	}
	intent, err := h.stripe.CancelIntent(r.Context(), &req)
	h.write(w, "CancelIntent", intent, err)
}

func (h *PaymentHandler) GetIntent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	intent, err := h.stripe.GetIntent(r.Context(), ps.ByName("id"))
	h.write(w, "GetIntent", intent, err)
}

func (h *PaymentHandler) CreateConnectAccount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ConnectAccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	account, err := h.stripe.CreateConnectAccount(r.Context(), &req)
	h.write(w, "CreateConnectAccount", account, err)
}

func (h *PaymentHandler) CreateAccountLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.AccountLinkRequest
	if !h.decode(w, r, &req) {
		return
	}
	link, err := h.stripe.CreateAccountLink(r.Context(), &req)
	h.write(w, "CreateAccountLink", link, err)
}

func (h *PaymentHandler) GetAccountStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status, err := h.stripe.GetAccountStatus(r.Context(), ps.ByName("id"))
	h.write(w, "GetAccountStatus", status, err)
}

func (h *PaymentHandler) Transfer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.TransferRequest
	if !h.decode(w, r, &req) {
		return
	}
	transfer, err := h.stripe.TransferToContractor(r.Context(), &req)
	h.write(w, "Transfer", transfer, err)
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentCreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	payment, err := h.payments.Create(r.Context(), &req)
	if err != nil {
		h.write(w, "CreatePayment", nil, err)
		return
	}
	h.write(w, "CreatePayment", map[string]any{"success": true, "payment": payment}, nil)
}

func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentStatusUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	payment, err := h.payments.UpdateStatus(r.Context(), &req)
	if err != nil {
		h.write(w, "UpdatePaymentStatus", nil, err)
		return
	}
	h.write(w, "UpdatePaymentStatus", map[string]any{"success": true, "payment": payment}, nil)
}

func (h *PaymentHandler) ListContractorPayments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	payments, err := h.payments.ListByContractor(r.Context(), ps.ByName("id"))
	if err != nil {
		h.write(w, "ListContractorPayments", nil, err)
		return
	}
	h.write(w, "ListContractorPayments", map[string]any{"success": true, "payments": payments}, nil)
}

func (h *PaymentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/payment-intent", h.CreateIntent)
	router.POST("/api/payment-intent-with-fee", h.CreateIntentWithFee)
	router.POST("/api/payment-intent/confirm", h.ConfirmIntent)
	router.POST("/api/payment-intent/cancel", h.CancelIntent)
	router.GET("/api/payment-intent/:id", h.GetIntent)

	router.POST("/api/connect-account", h.CreateConnectAccount)
	router.POST("/api/connect-account-link", h.CreateAccountLink)
	router.GET("/api/connect-account/:id/status", h.GetAccountStatus)
	router.POST("/api/connect-account/transfer", h.Transfer)

	router.POST("/api/payments/create", h.CreatePayment)
	router.POST("/api/payments/update-status", h.UpdatePaymentStatus)
	router.GET("/api/payments/contractor/:id", h.ListContractorPayments)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"dandee/internal/payments/repository"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
)

// Platform fee: 2.9% + $0.30, computed in this order and stored as-is.
const (
	feeRate = 0.029
	feeFlat = 0.30
)

type PaymentService interface {
	Create(ctx context.Context, req *model.PaymentCreateRequest) (*model.Payment, error)
	UpdateStatus(ctx context.Context, req *model.PaymentStatusUpdateRequest) (*model.Payment, error)
	ListByContractor(ctx context.Context, contractorID string) ([]*model.Payment, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewPaymentService(repo repository.PaymentRepository, cfg *config.Config) PaymentService {
	return &paymentService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfg:      cfg,
	}
}

func (s *paymentService) ready() error {
	if s.repo == nil {
		return apperrors.Unavailable("Payment storage is not configured")
	}
	return nil
}

// PlatformFee computes the fee for an amount. Exposed so the split can be
// shown to the customer before a payment row exists.
func PlatformFee(amount float64) float64 {
	return amount*feeRate + feeFlat
}

func (s *paymentService) Create(ctx context.Context, req *model.PaymentCreateRequest) (*model.Payment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Payment create validation failed", "error", err)
		return nil, apperrors.InvalidInput("Missing required payment fields")
	}

	fee := PlatformFee(req.Amount)
	method := req.PaymentMethod
	if method == "" {
		method = "stripe"
	}

	payment := &model.Payment{
		ID:               uuid.NewString(),
		PaymentNumber:    fmt.Sprintf("PAY-%d", time.Now().UnixMilli()),
		InvoiceID:        req.InvoiceID,
		JobRequestID:     req.JobRequestID,
		ContractorID:     req.ContractorID,
		CustomerID:       req.CustomerID,
		Amount:           req.Amount,
		PaymentMethod:    method,
		Status:           "pending",
		Currency:         "usd",
		PlatformFee:      fee,
		ContractorPayout: req.Amount - fee,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, payment); err != nil {
		s.cfg.Log.Error("Failed to create payment", "invoice_id", req.InvoiceID, "error", err)
		return nil, apperrors.Internal("Failed to create payment", err)
	}

	s.cfg.Log.Info("Payment created",
		"payment_id", payment.ID,
		"payment_number", payment.PaymentNumber,
		"amount", payment.Amount,
	)
	return payment, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, req *model.PaymentStatusUpdateRequest) (*model.Payment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.PaymentID == "" || req.Status == "" {
		return nil, apperrors.InvalidInput("paymentId and status are required")
	}

	var paymentDate *time.Time
	if req.Status == "succeeded" {
		now := time.Now().UTC()
		paymentDate = &now
	}

	payment, err := s.repo.UpdateStatus(ctx, req.PaymentID, req.Status, req.StripePaymentIntentID, paymentDate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundWithID("Payment", req.PaymentID)
		}
		s.cfg.Log.Error("Failed to update payment status", "payment_id", req.PaymentID, "error", err)
		return nil, apperrors.Internal("Failed to update payment status", err)
	}

	s.cfg.Log.Info("Payment status updated", "payment_id", payment.ID, "status", payment.Status)
	return payment, nil
}

func (s *paymentService) ListByContractor(ctx context.Context, contractorID string) ([]*model.Payment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if contractorID == "" {
		return nil, apperrors.InvalidInput("Contractor ID is required")
	}

	payments, err := s.repo.FindByContractor(ctx, contractorID)
	if err != nil {
		s.cfg.Log.Error("Failed to list contractor payments", "contractor_id", contractorID, "error", err)
		return nil, apperrors.Internal("Failed to list payments", err)
	}
	return payments, nil
}

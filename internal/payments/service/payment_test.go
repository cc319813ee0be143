package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"dandee/pkg/client"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type fakePaymentRepo struct {
	inserted     *model.Payment
	updatedDate  *time.Time
	updatedID    string
	updateStatus string
	updateErr    error
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *model.Payment) error {
	f.inserted = payment
	return nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id, status, stripePaymentIntentID string, paymentDate *time.Time) (*model.Payment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedID = id
	f.updateStatus = status
	f.updatedDate = paymentDate
	return &model.Payment{ID: id, Status: status, StripePaymentIntentID: stripePaymentIntentID, PaymentDate: paymentDate}, nil
}

func (f *fakePaymentRepo) FindByContractor(_ context.Context, contractorID string) ([]*model.Payment, error) {
	return []*model.Payment{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log:    logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
		Client: client.NewClient(),
	}
}

func TestStripeOperationsWithoutClient(t *testing.T) {
	svc := NewStripeService(testConfig())

	_, err := svc.CreateIntent(context.Background(), &model.PaymentIntentRequest{Amount: 1000})
	if apperrors.AsAppError(err).StatusCode() != 503 {
		t.Errorf("CreateIntent status = %d, want 503", apperrors.AsAppError(err).StatusCode())
	}

	_, err = svc.GetIntent(context.Background(), "pi_123")
	if apperrors.AsAppError(err).StatusCode() != 503 {
		t.Errorf("GetIntent status = %d, want 503", apperrors.AsAppError(err).StatusCode())
	}
}

func TestCreateComputesPlatformFee(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewPaymentService(repo, testConfig())

	payment, err := svc.Create(context.Background(), &model.PaymentCreateRequest{
		InvoiceID:    "inv-1",
		JobRequestID: "job-1",
		ContractorID: "con-1",
		CustomerID:   "cus-1",
		Amount:       100.00,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	wantFee := 100.00*0.029 + 0.30
	if payment.PlatformFee != wantFee {
		t.Errorf("PlatformFee = %v, want %v", payment.PlatformFee, wantFee)
	}
	if payment.ContractorPayout != 100.00-wantFee {
		t.Errorf("ContractorPayout = %v, want %v", payment.ContractorPayout, 100.00-wantFee)
	}
	if payment.Status != "pending" {
		t.Errorf("Status = %q, want pending", payment.Status)
	}
	if payment.Currency != "usd" {
		t.Errorf("Currency = %q, want usd", payment.Currency)
	}
	if payment.PaymentMethod != "stripe" {
		t.Errorf("PaymentMethod = %q, want stripe", payment.PaymentMethod)
	}
	if !strings.HasPrefix(payment.PaymentNumber, "PAY-") {
		t.Errorf("PaymentNumber = %q, want PAY- prefix", payment.PaymentNumber)
	}
	if repo.inserted == nil {
		t.Error("expected payment to be persisted")
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  model.PaymentCreateRequest
	}{
		{"missing invoice", model.PaymentCreateRequest{JobRequestID: "j", ContractorID: "c", CustomerID: "u", Amount: 10}},
		{"missing amount", model.PaymentCreateRequest{InvoiceID: "i", JobRequestID: "j", ContractorID: "c", CustomerID: "u"}},
		{"negative amount", model.PaymentCreateRequest{InvoiceID: "i", JobRequestID: "j", ContractorID: "c", CustomerID: "u", Amount: -5}},
	}

	svc := NewPaymentService(&fakePaymentRepo{}, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			appErr := apperrors.AsAppError(err)
			if appErr.StatusCode() != 400 {
				t.Errorf("status = %d, want 400", appErr.StatusCode())
			}
		})
	}
}

func TestCreateWithoutStore(t *testing.T) {
	svc := NewPaymentService(nil, testConfig())

	_, err := svc.Create(context.Background(), &model.PaymentCreateRequest{
		InvoiceID: "i", JobRequestID: "j", ContractorID: "c", CustomerID: "u", Amount: 10,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() != 503 {
		t.Errorf("status = %d, want 503", appErr.StatusCode())
	}
}

func TestUpdateStatusSetsPaymentDateOnSuccess(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewPaymentService(repo, testConfig())

	if _, err := svc.UpdateStatus(context.Background(), &model.PaymentStatusUpdateRequest{
		PaymentID: "pay-1",
		Status:    "succeeded",
	}); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if repo.updatedDate == nil {
		t.Error("expected payment_date to be set for succeeded status")
	}

	repo.updatedDate = nil
	if _, err := svc.UpdateStatus(context.Background(), &model.PaymentStatusUpdateRequest{
		PaymentID: "pay-1",
		Status:    "failed",
	}); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if repo.updatedDate != nil {
		t.Error("payment_date must stay unset for non-succeeded statuses")
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, testConfig())

	_, err := svc.UpdateStatus(context.Background(), &model.PaymentStatusUpdateRequest{Status: "succeeded"})
	if apperrors.AsAppError(err).StatusCode() != 400 {
		t.Errorf("missing paymentId: status = %d, want 400", apperrors.AsAppError(err).StatusCode())
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &fakePaymentRepo{updateErr: mongo.ErrNoDocuments}
	svc := NewPaymentService(repo, testConfig())

	_, err := svc.UpdateStatus(context.Background(), &model.PaymentStatusUpdateRequest{
		PaymentID: "missing",
		Status:    "succeeded",
	})
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("status = %d, want 404", apperrors.AsAppError(err).StatusCode())
	}
}

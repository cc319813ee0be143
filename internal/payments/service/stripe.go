package service

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v82"

	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
)

// StripeService proxies payment-intent and Connect operations to Stripe.
// Amounts are rounded to integer cents at this boundary.
type StripeService interface {
	CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error)
	CreateIntentWithFee(ctx context.Context, req *model.PaymentIntentWithFeeRequest) (*model.PaymentIntentResponse, error)
	ConfirmIntent(ctx context.Context, req *model.PaymentIntentConfirmRequest) (*model.PaymentIntentResponse, error)
	CancelIntent(ctx context.Context, req *model.PaymentIntentCancelRequest) (*model.PaymentIntentResponse, error)
	GetIntent(ctx context.Context, id string) (*model.PaymentIntentResponse, error)

	CreateConnectAccount(ctx context.Context, req *model.ConnectAccountRequest) (*model.ConnectAccountResponse, error)
	CreateAccountLink(ctx context.Context, req *model.AccountLinkRequest) (*model.AccountLinkResponse, error)
	GetAccountStatus(ctx context.Context, accountID string) (*model.ConnectAccountStatus, error)
	TransferToContractor(ctx context.Context, req *model.TransferRequest) (*model.TransferResponse, error)
}

type stripeService struct {
	cfg *config.Config
}

func NewStripeService(cfg *config.Config) StripeService {
	return &stripeService{cfg: cfg}
}

// ready guards every operation: a nil client means the secret key was never
// configured, which is a 503, not a processor failure.
func (s *stripeService) ready() error {
	if s.cfg.Client.Stripe == nil {
		return apperrors.Unavailable("Stripe is not configured")
	}
	return nil
}

func cents(amount float64) int64 {
	return int64(math.Round(amount))
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "usd"
	}
	return currency
}

func (s *stripeService) CreateIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, apperrors.InvalidInput("Amount is required")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents(req.Amount)),
		Currency: stripe.String(currencyOrDefault(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := s.cfg.Client.Stripe.PaymentIntents.New(params)
	if err != nil {
		s.cfg.Log.Error("Failed to create payment intent", "amount", req.Amount, "error", err)
		return nil, apperrors.Internal("Failed to create payment intent", err)
	}

	s.cfg.Log.Info("Payment intent created", "payment_intent_id", intent.ID, "amount", intent.Amount)
	return &model.PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		Created:      intent.Created,
	}, nil
}

func (s *stripeService) CreateIntentWithFee(ctx context.Context, req *model.PaymentIntentWithFeeRequest) (*model.PaymentIntentResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, apperrors.InvalidInput("Amount is required")
	}
	if req.ContractorAccountID == "" {
		return nil, apperrors.InvalidInput("Contractor account ID is required")
	}

	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(cents(req.Amount)),
		Currency:             stripe.String(currencyOrDefault(req.Currency)),
		ApplicationFeeAmount: stripe.Int64(cents(req.ApplicationFeeAmount)),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.ContractorAccountID),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := s.cfg.Client.Stripe.PaymentIntents.New(params)
	if err != nil {
		s.cfg.Log.Error("Failed to create payment intent with fee",
			"amount", req.Amount,
			"application_fee_amount", req.ApplicationFeeAmount,
			"contractor_account_id", req.ContractorAccountID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to create payment intent with fee", err)
	}

	s.cfg.Log.Info("Payment intent with fee created", "payment_intent_id", intent.ID)
	return &model.PaymentIntentResponse{
		ID:                   intent.ID,
		ClientSecret:         intent.ClientSecret,
		Amount:               intent.Amount,
		Currency:             string(intent.Currency),
		ApplicationFeeAmount: intent.ApplicationFeeAmount,
		Status:               string(intent.Status),
	}, nil
}

func (s *stripeService) ConfirmIntent(ctx context.Context, req *model.PaymentIntentConfirmRequest) (*model.PaymentIntentResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.PaymentIntentID == "" {
		return nil, apperrors.InvalidInput("Payment intent ID is required")
	}

	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx
	if req.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethodID)
	}

	intent, err := s.cfg.Client.Stripe.PaymentIntents.Confirm(req.PaymentIntentID, params)
	if err != nil {
		s.cfg.Log.Error("Failed to confirm payment", "payment_intent_id", req.PaymentIntentID, "error", err)
		return nil, apperrors.Internal("Failed to confirm payment", err)
	}

	s.cfg.Log.Info("Payment confirmed", "payment_intent_id", intent.ID, "status", intent.Status)
	return &model.PaymentIntentResponse{
		ID:       intent.ID,
		Status:   string(intent.Status),
		Amount:   intent.Amount,
		Currency: string(intent.Currency),
	}, nil
}

func (s *stripeService) CancelIntent(ctx context.Context, req *model.PaymentIntentCancelRequest) (*model.PaymentIntentResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.PaymentIntentID == "" {
		return nil, apperrors.InvalidInput("Payment intent ID is required")
	}

	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	intent, err := s.cfg.Client.Stripe.PaymentIntents.Cancel(req.PaymentIntentID, params)
	if err != nil {
		s.cfg.Log.Error("Failed to cancel payment", "payment_intent_id", req.PaymentIntentID, "error", err)
		return nil, apperrors.Internal("Failed to cancel payment", err)
	}

	s.cfg.Log.Info("Payment canceled", "payment_intent_id", intent.ID, "status", intent.Status)
	return &model.PaymentIntentResponse{
		ID:     intent.ID,
		Status: string(intent.Status),
	}, nil
}

func (s *stripeService) GetIntent(ctx context.Context, id string) (*model.PaymentIntentResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.InvalidInput("Payment intent ID is required")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := s.cfg.Client.Stripe.PaymentIntents.Get(id, params)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve payment intent", "payment_intent_id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve payment intent", err)
	}

	return &model.PaymentIntentResponse{
		ID:       intent.ID,
		Status:   string(intent.Status),
		Amount:   intent.Amount,
		Currency: string(intent.Currency),
		Created:  intent.Created,
		Metadata: intent.Metadata,
	}, nil
}

func (s *stripeService) CreateConnectAccount(ctx context.Context, req *model.ConnectAccountRequest) (*model.ConnectAccountResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		Email:        stripe.String(req.Email),
		BusinessType: stripe.String("individual"),
	}
	params.Context = ctx
	params.AddMetadata("contractor_id", req.ContractorID)
	params.AddMetadata("business_name", req.BusinessName)

	account, err := s.cfg.Client.Stripe.Accounts.New(params)
	if err != nil {
		s.cfg.Log.Error("Failed to create Connect account", "email", req.Email, "error", err)
		return nil, apperrors.Internal("Failed to create Connect account", err)
	}

	s.cfg.Log.Info("Connect account created", "account_id", account.ID)
	return &model.ConnectAccountResponse{
		AccountID: account.ID,
		Account: model.ConnectAccountStatus{
			ID:               account.ID,
			Email:            account.Email,
			ChargesEnabled:   account.ChargesEnabled,
			PayoutsEnabled:   account.PayoutsEnabled,
			DetailsSubmitted: account.DetailsSubmitted,
		},
	}, nil
}

func (s *stripeService) CreateAccountLink(ctx context.Context, req *model.AccountLinkRequest) (*model.AccountLinkResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.AccountID == "" {
		return nil, apperrors.InvalidInput("Account ID is required")
	}

	refreshURL := req.RefreshURL
	if refreshURL == "" {
		refreshURL = "https://dandee.app/contractor/onboarding/refresh"
	}
	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = "https://dandee.app/contractor/onboarding/complete"
	}

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(req.AccountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := s.cfg.Client.Stripe.AccountLinks.New(params)
	if err != nil {
		s.cfg.Log.Error("Failed to create account link", "account_id", req.AccountID, "error", err)
		return nil, apperrors.Internal("Failed to create account link", err)
	}

	s.cfg.Log.Info("Account link created", "account_id", req.AccountID)
	return &model.AccountLinkResponse{
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

func (s *stripeService) GetAccountStatus(ctx context.Context, accountID string) (*model.ConnectAccountStatus, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if accountID == "" {
		return nil, apperrors.InvalidInput("Account ID is required")
	}

	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := s.cfg.Client.Stripe.Accounts.GetByID(accountID, params)
	if err != nil {
		s.cfg.Log.Error("Failed to get account status", "account_id", accountID, "error", err)
		return nil, apperrors.Internal("Failed to get account status", err)
	}

	return &model.ConnectAccountStatus{
		ID:               account.ID,
		Email:            account.Email,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
		Requirements:     account.Requirements,
	}, nil
}

func (s *stripeService) TransferToContractor(ctx context.Context, req *model.TransferRequest) (*model.TransferResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.AccountID == "" {
		return nil, apperrors.InvalidInput("Account ID is required")
	}
	if req.Amount <= 0 {
		return nil, apperrors.InvalidInput("Amount is required")
	}

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(cents(req.Amount)),
		Currency:    stripe.String(currencyOrDefault(req.Currency)),
		Destination: stripe.String(req.AccountID),
	}
	params.Context = ctx
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	transfer, err := s.cfg.Client.Stripe.Transfers.New(params)
	if err != nil {
		s.cfg.Log.Error("Failed to transfer to contractor", "account_id", req.AccountID, "amount", req.Amount, "error", err)
		return nil, apperrors.Internal("Failed to transfer to contractor", err)
	}

	s.cfg.Log.Info("Transfer completed", "transfer_id", transfer.ID, "account_id", req.AccountID)
	resp := &model.TransferResponse{
		TransferID: transfer.ID,
		Amount:     transfer.Amount,
		Currency:   string(transfer.Currency),
		Status:     "succeeded",
	}
	if transfer.Destination != nil {
		resp.Destination = transfer.Destination.ID
	}
	return resp, nil
}

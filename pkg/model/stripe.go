package model

// Amounts arrive as JSON numbers already denominated in cents; they are
// rounded to the nearest integer cent before reaching the processor.

type PaymentIntentRequest struct {
	Amount   float64           `json:"amount" validate:"required,gt=0"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

type PaymentIntentWithFeeRequest struct {
	Amount               float64           `json:"amount" validate:"required,gt=0"`
	Currency             string            `json:"currency"`
	ApplicationFeeAmount float64           `json:"application_fee_amount" validate:"required,gt=0"`
	ContractorAccountID  string            `json:"contractor_account_id" validate:"required"`
	Metadata             map[string]string `json:"metadata"`
}

type PaymentIntentConfirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type PaymentIntentCancelRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

type PaymentIntentResponse struct {
	ID                   string            `json:"id"`
	ClientSecret         string            `json:"client_secret,omitempty"`
	Amount               int64             `json:"amount"`
	Currency             string            `json:"currency"`
	ApplicationFeeAmount int64             `json:"application_fee_amount,omitempty"`
	Status               string            `json:"status"`
	Created              int64             `json:"created,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
}

type ConnectAccountRequest struct {
	Email        string `json:"email" validate:"required,email"`
	BusinessName string `json:"businessName"`
	ContractorID string `json:"contractorId"`
}

type ConnectAccountResponse struct {
	AccountID string               `json:"accountId"`
	Account   ConnectAccountStatus `json:"account"`
}

type ConnectAccountStatus struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
	Requirements     any    `json:"requirements,omitempty"`
}

type AccountLinkRequest struct {
	AccountID  string `json:"accountId" validate:"required"`
	ReturnURL  string `json:"returnUrl"`
	RefreshURL string `json:"refreshUrl"`
}

type AccountLinkResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

type TransferRequest struct {
	AccountID string            `json:"accountId" validate:"required"`
	Amount    float64           `json:"amount" validate:"required,gt=0"`
	Currency  string            `json:"currency"`
	Metadata  map[string]string `json:"metadata"`
}

type TransferResponse struct {
	TransferID  string `json:"transferId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
}

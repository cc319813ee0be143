package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "amount is required", http.StatusBadRequest)

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.Message != "amount is required" {
		t.Errorf("expected message 'amount is required', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "Job not found",
			},
			expected: "NOT_FOUND: Job not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "Failed to create payment",
				Err:     errors.New("write concern error"),
			},
			expected: "INTERNAL_ERROR: Failed to create payment (caused by: write concern error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInternal_AttachesCollaboratorMessage(t *testing.T) {
	cause := errors.New("connection reset by peer")
	appErr := Internal("Failed to fetch notifications", cause)

	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", appErr.HTTPStatus)
	}
	if appErr.Details["details"] != cause.Error() {
		t.Errorf("expected collaborator message in details, got %v", appErr.Details)
	}
	if errors.Unwrap(appErr) != cause {
		t.Error("Unwrap() should return the collaborator error")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		code   string
	}{
		{"unavailable", Unavailable("Stripe client not configured"), http.StatusServiceUnavailable, CodeUnavailable},
		{"invalid input", InvalidInput("userId is required"), http.StatusBadRequest, CodeInvalidInput},
		{"not found", NotFoundWithID("Payment", "abc"), http.StatusNotFound, CodeNotFound},
		{"payload too large", PayloadTooLarge("photo too large"), http.StatusRequestEntityTooLarge, CodePayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.status {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.code)
			}
		})
	}
}

func TestAsAppError_WrapsUnknown(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected %s, got %s", CodeInternal, appErr.Code)
	}
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to be true for converted error")
	}
}

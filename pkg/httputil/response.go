package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "dandee/pkg/errors"
)

// ErrorResponse is the uniform error body: the message plus optional
// pass-through details from the failing collaborator.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an error to its HTTP status and JSON body. Unknown error
// types become a generic 500 so programming errors never leak internals.
func WriteError(w http.ResponseWriter, err error) error {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
		})
	}

	resp := ErrorResponse{Error: appErr.Message}
	if d, ok := appErr.Details["details"].(string); ok {
		resp.Details = d
	}
	return WriteJSON(w, appErr.StatusCode(), resp)
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/omnicart/database-service/internal/apperrors"
)

type errorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps the taxonomy to HTTP statuses: business conflicts and illegal
// transitions are 409, unknown entities 404, malformed input 400, the rest 500.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code, ok := apperrors.CodeOf(err)
	if ok {
		switch code {
		case apperrors.CodeInsufficientStock, apperrors.CodeInvalidState, apperrors.CodeConflict:
			status = http.StatusConflict
		case apperrors.CodeNotFound:
			status = http.StatusNotFound
		case apperrors.CodeValidation:
			status = http.StatusBadRequest
		}
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak driver internals to clients.
		detail = "internal server error"
	}
	JSON(w, status, errorBody{Detail: detail, Code: string(code)})
}

// Decode reads a JSON request body into v, surfacing malformed payloads as
// VALIDATION_ERROR so they map to 400.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err)
	}
	return nil
}

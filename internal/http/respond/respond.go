// Package respond writes JSON responses and maps service errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Message: msg})
}

func BadRequest(w http.ResponseWriter, msg string) {
	Message(w, http.StatusBadRequest, msg)
}

func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Unauthorized")
}

// Error maps err onto a response. Validation failures carry their field
// errors, missing rows become 404 and anything else is logged and reported
// with the fixed fallback message.
func Error(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *apperr.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request", Errors: verr.Errors})
	case errors.Is(err, apperr.ErrValidation):
		BadRequest(w, "Invalid request")
	case errors.Is(err, apperr.ErrNotFound):
		Message(w, http.StatusNotFound, "Not found")
	case errors.Is(err, apperr.ErrConflict):
		Message(w, http.StatusConflict, "Already exists")
	case errors.Is(err, apperr.ErrUnauthorized):
		Unauthorized(w)
	default:
		slog.ErrorContext(r.Context(), fallback,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
		Message(w, http.StatusInternalServerError, fallback)
	}
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		BadRequest(w, "Invalid JSON body")
		return false
	}

	return true
}

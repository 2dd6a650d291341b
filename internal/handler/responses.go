package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing more we can do here.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs the failure and answers with the status and
// user-facing message derived from the underlying domain error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal errors collapse to a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrPrintingNotFound):
		return http.StatusNotFound, ErrMsgPrintingNotFoundErr
	case errors.Is(err, domain.ErrDeckNotFound):
		return http.StatusNotFound, ErrMsgDeckNotFoundError
	case errors.Is(err, domain.ErrNotDeckOwner):
		return http.StatusForbidden, ErrMsgNotDeckOwnerError
	case errors.Is(err, domain.ErrImportSourceNotFound):
		return http.StatusNotFound, ErrMsgSourceNotFoundError
	case errors.Is(err, domain.ErrLastAdmin):
		return http.StatusConflict, ErrMsgLastAdminError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

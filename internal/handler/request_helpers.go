package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CardBinder_Go/internal/logger"
)

// HeaderUserID carries the acting user's ID on authenticated endpoints.
const HeaderUserID = "X-User-Id"

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If it returns an error the response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RequireUserID resolves the acting user from the X-User-Id header. A
// missing or non-UUID value answers 400 plain text and returns ok=false,
// in which case the handler should return.
func RequireUserID(r *http.Request, w http.ResponseWriter) (string, bool) {
	log := logger.FromContext(r.Context())

	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		log.Warn("Missing user header")
		http.Error(w, ErrMsgMissingUserHeader, http.StatusBadRequest)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("Invalid user header", "error", err)
		http.Error(w, ErrMsgMissingUserHeader, http.StatusBadRequest)
		return "", false
	}
	return id.String(), true
}

// URLParamInt parses an integer chi URL parameter. On failure it answers
// 400 plain text and returns ok=false.
func URLParamInt(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	log := logger.FromContext(r.Context())

	value, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil || value <= 0 {
		log.Warn("Invalid path parameter", "param", paramName)
		http.Error(w, fmt.Sprintf(ErrMsgInvalidPathParam, paramName), http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

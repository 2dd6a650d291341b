package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/logger"
)

// ProblemDetails is an RFC 7807 error body. It is used for the conflict
// answers where a plain error string loses too much context.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	TraceID  string `json:"traceId"`
}

const problemTypeLastAdmin = "https://cardbinder.dev/problems/last-administrator"

// respondLastAdminProblem answers 409 application/problem+json for a
// rejected removal of the only remaining administrator.
func respondLastAdminProblem(w http.ResponseWriter, r *http.Request) {
	traceID, _ := logger.RequestIDFromContext(r.Context())
	problem := ProblemDetails{
		Type:     problemTypeLastAdmin,
		Title:    "Cannot remove last administrator",
		Status:   http.StatusConflict,
		Detail:   ErrMsgLastAdminError,
		Instance: r.URL.Path,
		TraceID:  traceID,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusConflict)

	buf := getBuffer()
	defer putBuffer(buf)
	if err := json.NewEncoder(buf).Encode(problem); err != nil {
		slog.Error("Failed to encode problem response", "error", err)
		return
	}
	_, _ = buf.WriteTo(w)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/price"
)

// HandleGetPriceHistory handles the trailing-window daily price history
// @Summary Get price history
// @Description One point per calendar day over a trailing window, oldest first. A missing or non-positive days value defaults to 30.
// @Tags prices
// @Produce json
// @Param printingId path int true "Printing ID"
// @Param days query int false "Trailing window in days"
// @Success 200 {object} domain.PriceHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prices/{printingId}/history [get]
func HandleGetPriceHistory(svc price.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		printingID, ok := URLParamInt(r, w, "printingId")
		if !ok {
			return
		}

		days := 0
		if raw := GetOptionalQueryParam(r, "days", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				log.Warn("Invalid days query parameter", "value", raw)
				http.Error(w, "Invalid days query parameter", http.StatusBadRequest)
				return
			}
			days = parsed
		}

		history, err := svc.GetHistory(r.Context(), printingID, days)
		if err != nil {
			respondServiceError(w, r, "Get price history", err)
			return
		}
		respondJSON(w, http.StatusOK, history)
	}
}

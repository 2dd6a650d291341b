package handler

import (
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/domain"
)

// HandleSearchCards handles catalog search
// @Summary Search cards
// @Description List catalog cards, optionally filtered by a case-insensitive name substring
// @Tags catalog
// @Produce json
// @Param name query string false "Name substring"
// @Success 200 {array} domain.Card
// @Failure 500 {object} ErrorResponse
// @Router /cards [get]
func HandleSearchCards(svc card.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nameFilter := GetOptionalQueryParam(r, "name", "")

		cards, err := svc.SearchCards(r.Context(), nameFilter)
		if err != nil {
			respondServiceError(w, r, "Search cards", err)
			return
		}
		if cards == nil {
			cards = []domain.Card{}
		}
		respondJSON(w, http.StatusOK, cards)
	}
}

// HandleGetCard handles fetching one card
// @Summary Get card
// @Tags catalog
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cards/{id} [get]
func HandleGetCard(svc card.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		fetched, err := svc.GetCard(r.Context(), cardID)
		if err != nil {
			respondServiceError(w, r, "Get card", err)
			return
		}
		respondJSON(w, http.StatusOK, fetched)
	}
}

// HandleListPrintings handles listing a card's printings
// @Summary List printings of a card
// @Tags catalog
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} domain.Printing
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cards/{id}/printings [get]
func HandleListPrintings(svc card.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		printings, err := svc.ListPrintings(r.Context(), cardID)
		if err != nil {
			respondServiceError(w, r, "List printings", err)
			return
		}
		if printings == nil {
			printings = []domain.Printing{}
		}
		respondJSON(w, http.StatusOK, printings)
	}
}

// HandleGetPrinting handles fetching one printing
// @Summary Get printing
// @Tags catalog
// @Produce json
// @Param id path int true "Printing ID"
// @Success 200 {object} domain.Printing
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /printings/{id} [get]
func HandleGetPrinting(svc card.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		printingID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		printing, err := svc.GetPrinting(r.Context(), printingID)
		if err != nil {
			respondServiceError(w, r, "Get printing", err)
			return
		}
		respondJSON(w, http.StatusOK, printing)
	}
}

// HandleCacheStats reports printing cache effectiveness
// @Summary Printing cache statistics
// @Tags admin
// @Produce json
// @Success 200 {object} card.CacheStats
// @Router /admin/cache-stats [get]
func HandleCacheStats(svc card.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CacheStats())
	}
}

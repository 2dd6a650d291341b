package handler

import (
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/deck"
	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
)

// DeckRequest carries deck metadata for create and update.
type DeckRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Format      string `json:"format" validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// HandleCreateDeck handles deck creation
// @Summary Create deck
// @Tags decks
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body DeckRequest true "Deck details"
// @Success 201 {object} domain.Deck
// @Failure 400 {object} ValidationErrorResponse
// @Router /decks [post]
func HandleCreateDeck(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req DeckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create deck"); err != nil {
			return
		}

		created, err := svc.CreateDeck(r.Context(), userID, req.Name, req.Format, req.Description)
		if err != nil {
			respondServiceError(w, r, "Create deck", err)
			return
		}

		log.Info("Deck created", "deck_id", created.ID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListDecks handles listing the user's decks
// @Summary List decks
// @Tags decks
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Success 200 {array} domain.Deck
// @Failure 400 {object} ErrorResponse
// @Router /decks [get]
func HandleListDecks(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		decks, err := svc.ListDecks(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List decks", err)
			return
		}
		if decks == nil {
			decks = []domain.Deck{}
		}
		respondJSON(w, http.StatusOK, decks)
	}
}

// HandleGetDeck handles fetching one deck
// @Summary Get deck
// @Tags decks
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param id path int true "Deck ID"
// @Success 200 {object} domain.Deck
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id} [get]
func HandleGetDeck(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}
		deckID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		fetched, err := svc.GetDeck(r.Context(), userID, deckID)
		if err != nil {
			respondServiceError(w, r, "Get deck", err)
			return
		}
		respondJSON(w, http.StatusOK, fetched)
	}
}

// HandleUpdateDeck handles deck metadata updates
// @Summary Update deck
// @Tags decks
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param id path int true "Deck ID"
// @Param request body DeckRequest true "Deck details"
// @Success 200 {object} domain.Deck
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id} [put]
func HandleUpdateDeck(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}
		deckID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req DeckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update deck"); err != nil {
			return
		}

		updated, err := svc.UpdateDeck(r.Context(), userID, deckID, req.Name, req.Format, req.Description)
		if err != nil {
			respondServiceError(w, r, "Update deck", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteDeck handles deck deletion
// @Summary Delete deck
// @Tags decks
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param id path int true "Deck ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id} [delete]
func HandleDeleteDeck(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}
		deckID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		if err := svc.DeleteDeck(r.Context(), userID, deckID); err != nil {
			respondServiceError(w, r, "Delete deck", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Deck deleted"})
	}
}

// SetDeckCardsRequest replaces the deck's card list.
type SetDeckCardsRequest struct {
	Cards []DeckCardEntry `json:"cards" validate:"required,max=500,dive"`
}

// DeckCardEntry is one printing entry of a deck card list.
type DeckCardEntry struct {
	CardPrintingID int   `json:"cardPrintingId" validate:"required,gt=0"`
	Quantity       int32 `json:"quantity" validate:"gte=0"`
}

// HandleSetDeckCards handles replacing the deck's card list
// @Summary Replace deck cards
// @Tags decks
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param id path int true "Deck ID"
// @Param request body SetDeckCardsRequest true "Card list"
// @Success 200 {object} domain.Deck
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /decks/{id}/cards [put]
func HandleSetDeckCards(svc deck.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}
		deckID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req SetDeckCardsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set deck cards"); err != nil {
			return
		}

		cards := make([]domain.DeckCard, 0, len(req.Cards))
		for _, entry := range req.Cards {
			cards = append(cards, domain.DeckCard{
				CardPrintingID: entry.CardPrintingID,
				Quantity:       entry.Quantity,
			})
		}

		updated, err := svc.SetDeckCards(r.Context(), userID, deckID, cards)
		if err != nil {
			respondServiceError(w, r, "Set deck cards", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

package handler

import (
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/wishlist"
)

// SetWantedRequest overwrites the wanted counter.
type SetWantedRequest struct {
	CardPrintingID int   `json:"cardPrintingId" validate:"required,gt=0"`
	QuantityWanted int32 `json:"quantityWanted" validate:"gte=0"`
}

// HandleSetWanted handles the absolute wanted-counter overwrite
// @Summary Set wanted quantity
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body SetWantedRequest true "Wanted quantity"
// @Success 200 {object} domain.UserCardRecord
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/cards [put]
func HandleSetWanted(svc wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req SetWantedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set wanted"); err != nil {
			return
		}

		record, err := svc.SetWanted(r.Context(), userID, req.CardPrintingID, req.QuantityWanted)
		if err != nil {
			respondServiceError(w, r, "Set wanted", err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

// WantedDeltaRequest adjusts the wanted counter by a signed delta.
type WantedDeltaRequest struct {
	CardPrintingID int   `json:"cardPrintingId" validate:"required,gt=0"`
	DeltaWanted    int32 `json:"deltaWanted"`
}

// HandleWantedDelta handles signed wanted-counter adjustments
// @Summary Adjust wanted quantity
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body WantedDeltaRequest true "Delta"
// @Success 200 {object} domain.UserCardRecord
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/cards/delta [post]
func HandleWantedDelta(svc wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req WantedDeltaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Wanted delta"); err != nil {
			return
		}

		record, err := svc.ApplyWantedDelta(r.Context(), userID, req.CardPrintingID, req.DeltaWanted)
		if err != nil {
			respondServiceError(w, r, "Wanted delta", err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

// WishlistQuickAddResponse reports the wanted counter after a quick add.
type WishlistQuickAddResponse struct {
	PrintingID     int   `json:"printingId"`
	QuantityWanted int32 `json:"quantityWanted"`
}

// HandleWishlistQuickAdd handles the one-field add to the wanted counter
// @Summary Quick-add wanted copies
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body QuickAddRequest true "Printing and quantity"
// @Success 200 {object} WishlistQuickAddResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/cards/quick-add [post]
func HandleWishlistQuickAdd(svc wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req QuickAddRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Wishlist quick add"); err != nil {
			return
		}

		record, err := svc.QuickAdd(r.Context(), userID, req.PrintingID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Wishlist quick add", err)
			return
		}
		respondJSON(w, http.StatusOK, WishlistQuickAddResponse{
			PrintingID:     record.CardPrintingID,
			QuantityWanted: record.QuantityWanted,
		})
	}
}

// MoveToCollectionRequest converts wanted copies into owned or proxy ones.
type MoveToCollectionRequest struct {
	CardPrintingID int   `json:"cardPrintingId" validate:"required,gt=0"`
	Quantity       int32 `json:"quantity" validate:"required,gt=0"`
	UseProxy       bool  `json:"useProxy"`
}

// HandleMoveToCollection handles acquiring wished-for copies
// @Summary Move wishlist copies to collection
// @Description Decrease the wanted counter and increase owned (or proxy) by the moved quantity. Moving more than is wanted clears the want.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body MoveToCollectionRequest true "Move details"
// @Success 200 {object} domain.MoveResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wishlist/cards/move-to-collection [post]
func HandleMoveToCollection(svc wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req MoveToCollectionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move to collection"); err != nil {
			return
		}

		result, err := svc.MoveToCollection(r.Context(), userID, req.CardPrintingID, req.Quantity, req.UseProxy)
		if err != nil {
			respondServiceError(w, r, "Move to collection", err)
			return
		}

		log.Debug("Wishlist move applied",
			"printing_id", req.CardPrintingID, "quantity", req.Quantity, "use_proxy", req.UseProxy)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetWishlist handles listing the user's wanted records
// @Summary List wishlist
// @Tags wishlist
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Success 200 {array} domain.UserCardRecord
// @Failure 400 {object} ErrorResponse
// @Router /wishlist/cards [get]
func HandleGetWishlist(svc wishlist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		records, err := svc.GetWishlist(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get wishlist", err)
			return
		}
		if records == nil {
			records = []domain.UserCardRecord{}
		}
		respondJSON(w, http.StatusOK, records)
	}
}

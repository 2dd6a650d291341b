package handler

import (
	"net/http"

	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
)

// SetQuantitiesRequest is the absolute overwrite of all three counters.
type SetQuantitiesRequest struct {
	CardPrintingID     int   `json:"cardPrintingId" validate:"required,gt=0"`
	QuantityOwned      int32 `json:"quantityOwned" validate:"gte=0"`
	QuantityWanted     int32 `json:"quantityWanted" validate:"gte=0"`
	QuantityProxyOwned int32 `json:"quantityProxyOwned" validate:"gte=0"`
}

// HandleSetQuantities handles the absolute quantity overwrite
// @Summary Set collection quantities
// @Description Overwrite the owned, wanted, and proxy counters for one printing
// @Tags collection
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body SetQuantitiesRequest true "Quantities"
// @Success 200 {object} domain.UserCardRecord
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection/cards [put]
func HandleSetQuantities(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req SetQuantitiesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set quantities"); err != nil {
			return
		}

		record, err := svc.SetQuantities(r.Context(), userID, req.CardPrintingID,
			req.QuantityOwned, req.QuantityWanted, req.QuantityProxyOwned)
		if err != nil {
			respondServiceError(w, r, "Set quantities", err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

// ApplyDeltaRequest carries signed adjustments for all three counters.
type ApplyDeltaRequest struct {
	CardPrintingID  int   `json:"cardPrintingId" validate:"required,gt=0"`
	DeltaOwned      int32 `json:"deltaOwned"`
	DeltaWanted     int32 `json:"deltaWanted"`
	DeltaProxyOwned int32 `json:"deltaProxyOwned"`
}

// HandleApplyDelta handles signed counter adjustments
// @Summary Adjust collection quantities
// @Description Apply signed deltas to the counters for one printing. Results saturate at zero and MaxInt32.
// @Tags collection
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body ApplyDeltaRequest true "Deltas"
// @Success 200 {object} domain.UserCardRecord
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection/cards/delta [post]
func HandleApplyDelta(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req ApplyDeltaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply delta"); err != nil {
			return
		}

		record, err := svc.ApplyDelta(r.Context(), userID, req.CardPrintingID,
			req.DeltaOwned, req.DeltaWanted, req.DeltaProxyOwned)
		if err != nil {
			respondServiceError(w, r, "Apply delta", err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

// QuickAddRequest adds copies to the owned counter.
type QuickAddRequest struct {
	PrintingID int   `json:"printingId" validate:"required,gt=0"`
	Quantity   int32 `json:"quantity" validate:"required,gt=0"`
}

// QuickAddResponse reports the owned counter after a quick add.
type QuickAddResponse struct {
	PrintingID    int   `json:"printingId"`
	QuantityOwned int32 `json:"quantityOwned"`
}

// HandleQuickAdd handles the one-field add to the owned counter
// @Summary Quick-add owned copies
// @Tags collection
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body QuickAddRequest true "Printing and quantity"
// @Success 200 {object} QuickAddResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection/cards/quick-add [post]
func HandleQuickAdd(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req QuickAddRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quick add"); err != nil {
			return
		}

		record, err := svc.QuickAdd(r.Context(), userID, req.PrintingID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Quick add", err)
			return
		}

		log.Debug("Quick add applied", "printing_id", req.PrintingID, "owned", record.QuantityOwned)
		respondJSON(w, http.StatusOK, QuickAddResponse{
			PrintingID:    record.CardPrintingID,
			QuantityOwned: record.QuantityOwned,
		})
	}
}

// BulkApplyRequest applies owned/proxy deltas to many printings at once.
type BulkApplyRequest struct {
	Items []domain.BulkAdjustment `json:"items" validate:"required,min=1,max=500,dive"`
}

// BulkApplyResponse lists the records after a bulk adjustment.
type BulkApplyResponse struct {
	Records []domain.UserCardRecord `json:"records"`
}

// HandleBulkApply handles batched adjustments
// @Summary Bulk-adjust collection quantities
// @Description Apply owned and proxy deltas to many printings in one transaction. The batch applies fully or not at all.
// @Tags collection
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Param request body BulkApplyRequest true "Adjustments"
// @Success 200 {object} BulkApplyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collection/cards/bulk [post]
func HandleBulkApply(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		var req BulkApplyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Bulk apply"); err != nil {
			return
		}

		records, err := svc.BulkApply(r.Context(), userID, req.Items)
		if err != nil {
			respondServiceError(w, r, "Bulk apply", err)
			return
		}
		respondJSON(w, http.StatusOK, BulkApplyResponse{Records: records})
	}
}

// HandleGetCollection handles listing the user's holdings
// @Summary List collection
// @Tags collection
// @Produce json
// @Param X-User-Id header string true "Acting user ID"
// @Success 200 {array} domain.UserCardRecord
// @Failure 400 {object} ErrorResponse
// @Router /collection/cards [get]
func HandleGetCollection(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		records, err := svc.GetCollection(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get collection", err)
			return
		}
		if records == nil {
			records = []domain.UserCardRecord{}
		}
		respondJSON(w, http.StatusOK, records)
	}
}

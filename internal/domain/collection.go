package domain

// UserCardRecord holds one user's counters for one printing. All three
// counters stay within [0, MaxInt32]; a record with every counter at zero is
// treated as no holdings and is physically deleted.
type UserCardRecord struct {
	UserID             string `json:"user_id"`
	CardPrintingID     int    `json:"card_printing_id"`
	QuantityOwned      int32  `json:"quantity_owned"`
	QuantityWanted     int32  `json:"quantity_wanted"`
	QuantityProxyOwned int32  `json:"quantity_proxy_owned"`
}

// IsEmpty reports whether the record represents no holdings.
func (r UserCardRecord) IsEmpty() bool {
	return r.QuantityOwned == 0 && r.QuantityWanted == 0 && r.QuantityProxyOwned == 0
}

// MoveResult is the outcome of moving wanted copies into the collection.
// Availability counts only real copies; AvailabilityWithProxies includes
// proxies.
type MoveResult struct {
	CardPrintingID          int   `json:"printingId"`
	WantedAfter             int32 `json:"wantedAfter"`
	OwnedAfter              int32 `json:"ownedAfter"`
	ProxyAfter              int32 `json:"proxyAfter"`
	Availability            int64 `json:"availability"`
	AvailabilityWithProxies int64 `json:"availabilityWithProxies"`
}

// BulkAdjustment is one entry of a bulk collection update.
type BulkAdjustment struct {
	CardPrintingID int   `json:"printingId"`
	OwnedDelta     int32 `json:"ownedDelta"`
	ProxyDelta     int32 `json:"proxyDelta"`
}

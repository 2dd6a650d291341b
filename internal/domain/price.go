package domain

import (
	"fmt"
	"time"
)

// PricePoint is a single recorded price for a printing. Prices are stored in
// cents to keep arithmetic exact.
type PricePoint struct {
	CardPrintingID int
	PriceCents     int64
	RecordedAt     time.Time
}

// Cents renders as a JSON number with exactly two decimal places, so 200
// cents serializes as 2.00 rather than 2.
type Cents int64

// MarshalJSON formats the amount as units.hundredths without going through
// floating point.
func (c Cents) MarshalJSON() ([]byte, error) {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return []byte(fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)), nil
}

// DailyPrice is one per-calendar-day point of a price history, the
// most-recent recording within that day.
type DailyPrice struct {
	Day   string `json:"d"`
	Price Cents  `json:"p"`
}

// PriceHistory is the trailing-window history returned for a printing.
type PriceHistory struct {
	Points []DailyPrice `json:"points"`
}

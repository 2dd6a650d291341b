package importfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed price_feed.schema.json
var priceFeedSchemaJSON []byte

const priceFeedSchemaName = "price_feed.schema.json"

// PriceFeed is a decoded price feed payload.
type PriceFeed struct {
	Prices []PriceEntry `json:"prices"`
}

// PriceEntry is one observed price for a printing. RecordedAt is optional
// RFC 3339; a zero value means the feed carried no timestamp and the
// observation dates from ingest time.
type PriceEntry struct {
	PrintingID int       `json:"printingId"`
	PriceCents int64     `json:"priceCents"`
	RecordedAt time.Time `json:"recordedAt,omitempty"`
}

var priceFeedSchema = &schemaBox{name: priceFeedSchemaName, raw: priceFeedSchemaJSON}

// ParsePriceFeed validates data against the price feed schema and decodes it.
func ParsePriceFeed(data []byte) (*PriceFeed, error) {
	s, err := priceFeedSchema.load()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse price feed JSON: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return nil, formatValidationError("price feed", err)
	}

	var feed PriceFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode price feed: %w", err)
	}
	return &feed, nil
}

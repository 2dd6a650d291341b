package domain

import "time"

// ImportSource is an admin-managed upstream catalog or price feed.
type ImportSource struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Import source kinds.
const (
	ImportSourceKindCatalog = "catalog"
	ImportSourceKindPrices  = "prices"
)

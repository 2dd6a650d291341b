package domain

import "time"

// Deck is a user-owned named list of printings.
type Deck struct {
	ID          int        `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Format      string     `json:"format,omitempty"`
	Description string     `json:"description,omitempty"`
	Cards       []DeckCard `json:"cards,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DeckCard is one printing entry in a deck.
type DeckCard struct {
	CardPrintingID int   `json:"card_printing_id"`
	Quantity       int32 `json:"quantity"`
}

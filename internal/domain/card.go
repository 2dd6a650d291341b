package domain

// Card is the abstract card, independent of any particular edition.
type Card struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// Printing is a specific physical or digital edition of a card: the same
// card reprinted in another set (or in another style) is a distinct printing.
type Printing struct {
	ID              int    `json:"id"`
	CardID          int    `json:"card_id"`
	SetCode         string `json:"set_code"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`
	Style           string `json:"style,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}

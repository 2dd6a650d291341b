package repository

import (
	"context"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// Deck defines the interface for deck persistence
type Deck interface {
	CreateDeck(ctx context.Context, deck *domain.Deck) error
	GetDeckByID(ctx context.Context, deckID int) (*domain.Deck, error)
	ListDecksByUser(ctx context.Context, userID string) ([]domain.Deck, error)
	UpdateDeck(ctx context.Context, deck domain.Deck) error
	DeleteDeck(ctx context.Context, deckID int) error
	ReplaceDeckCards(ctx context.Context, deckID int, cards []domain.DeckCard) error
}

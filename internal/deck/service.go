package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/repository"
	"github.com/osse101/CardBinder_Go/internal/utils"
)

// PrintingChecker answers whether a printing exists in the catalog.
type PrintingChecker interface {
	PrintingExists(ctx context.Context, printingID int) (bool, error)
}

// Service defines the interface for deck management. Decks are owned by
// their creator; every mutation checks ownership first.
type Service interface {
	CreateDeck(ctx context.Context, userID, name, format, description string) (*domain.Deck, error)
	GetDeck(ctx context.Context, userID string, deckID int) (*domain.Deck, error)
	ListDecks(ctx context.Context, userID string) ([]domain.Deck, error)
	UpdateDeck(ctx context.Context, userID string, deckID int, name, format, description string) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, userID string, deckID int) error

	// SetDeckCards replaces the deck's card list. Quantities are clamped
	// non-negative and zero-quantity entries are dropped.
	SetDeckCards(ctx context.Context, userID string, deckID int, cards []domain.DeckCard) (*domain.Deck, error)
}

type service struct {
	repo    repository.Deck
	catalog PrintingChecker
}

// NewService creates a new deck service
func NewService(repo repository.Deck, catalog PrintingChecker) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) CreateDeck(ctx context.Context, userID, name, format, description string) (*domain.Deck, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: deck name must not be empty", domain.ErrInvalidInput)
	}

	deck := &domain.Deck{
		UserID:      userID,
		Name:        name,
		Format:      format,
		Description: description,
	}
	if err := s.repo.CreateDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	log.Info("Deck created", "deck_id", deck.ID, "user_id", userID, "name", name)
	return deck, nil
}

func (s *service) GetDeck(ctx context.Context, userID string, deckID int) (*domain.Deck, error) {
	return s.ownedDeck(ctx, userID, deckID)
}

func (s *service) ListDecks(ctx context.Context, userID string) ([]domain.Deck, error) {
	return s.repo.ListDecksByUser(ctx, userID)
}

func (s *service) UpdateDeck(ctx context.Context, userID string, deckID int, name, format, description string) (*domain.Deck, error) {
	deck, err := s.ownedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: deck name must not be empty", domain.ErrInvalidInput)
	}

	deck.Name = name
	deck.Format = format
	deck.Description = description
	if err := s.repo.UpdateDeck(ctx, *deck); err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}
	return deck, nil
}

func (s *service) DeleteDeck(ctx context.Context, userID string, deckID int) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return err
	}
	if err := s.repo.DeleteDeck(ctx, deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	log.Info("Deck deleted", "deck_id", deckID, "user_id", userID)
	return nil
}

func (s *service) SetDeckCards(ctx context.Context, userID string, deckID int, cards []domain.DeckCard) (*domain.Deck, error) {
	deck, err := s.ownedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	cleaned := make([]domain.DeckCard, 0, len(cards))
	for _, card := range cards {
		exists, err := s.catalog.PrintingExists(ctx, card.CardPrintingID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: printing %d", domain.ErrPrintingNotFound, card.CardPrintingID)
		}
		card.Quantity = utils.ClampInt32(card.Quantity)
		if card.Quantity == 0 {
			continue
		}
		cleaned = append(cleaned, card)
	}

	if err := s.repo.ReplaceDeckCards(ctx, deckID, cleaned); err != nil {
		return nil, fmt.Errorf("failed to replace deck cards: %w", err)
	}
	deck.Cards = cleaned
	return deck, nil
}

// ownedDeck loads the deck and enforces ownership. A deck owned by another
// user reads as a distinct error so handlers can answer 403 rather than 404.
func (s *service) ownedDeck(ctx context.Context, userID string, deckID int) (*domain.Deck, error) {
	deck, err := s.repo.GetDeckByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("%w: deck %d", domain.ErrDeckNotFound, deckID)
	}
	if deck.UserID != userID {
		return nil, fmt.Errorf("%w: deck %d", domain.ErrNotDeckOwner, deckID)
	}
	return deck, nil
}

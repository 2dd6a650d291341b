package deck

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Deck for tests.
type FakeRepository struct {
	mu     sync.Mutex
	nextID int
	decks  map[int]domain.Deck
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{nextID: 1, decks: make(map[int]domain.Deck)}
}

func (f *FakeRepository) CreateDeck(_ context.Context, deck *domain.Deck) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	deck.ID = f.nextID
	f.nextID++
	deck.CreatedAt = time.Now()
	deck.UpdatedAt = deck.CreatedAt
	f.decks[deck.ID] = *deck
	return nil
}

func (f *FakeRepository) GetDeckByID(_ context.Context, deckID int) (*domain.Deck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deck, ok := f.decks[deckID]
	if !ok {
		return nil, nil
	}
	return &deck, nil
}

func (f *FakeRepository) ListDecksByUser(_ context.Context, userID string) ([]domain.Deck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Deck
	for _, deck := range f.decks {
		if deck.UserID == userID {
			out = append(out, deck)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepository) UpdateDeck(_ context.Context, deck domain.Deck) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.decks[deck.ID]
	if !ok {
		return domain.ErrDeckNotFound
	}
	deck.CreatedAt = stored.CreatedAt
	deck.UpdatedAt = time.Now()
	f.decks[deck.ID] = deck
	return nil
}

func (f *FakeRepository) DeleteDeck(_ context.Context, deckID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.decks, deckID)
	return nil
}

func (f *FakeRepository) ReplaceDeckCards(_ context.Context, deckID int, cards []domain.DeckCard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	deck, ok := f.decks[deckID]
	if !ok {
		return domain.ErrDeckNotFound
	}
	deck.Cards = append([]domain.DeckCard(nil), cards...)
	deck.UpdatedAt = time.Now()
	f.decks[deckID] = deck
	return nil
}

package card

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Card for tests.
type FakeRepository struct {
	mu        sync.Mutex
	cards     map[int]domain.Card
	printings map[int]domain.Printing

	// ExistsCalls counts PrintingExists round trips so cache tests can
	// assert the repository was not hit twice.
	ExistsCalls int
}

// NewFakeRepository creates an empty in-memory catalog.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		cards:     make(map[int]domain.Card),
		printings: make(map[int]domain.Printing),
	}
}

// SeedCard inserts a card directly.
func (f *FakeRepository) SeedCard(c domain.Card) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cards[c.ID] = c
}

// SeedPrinting inserts a printing directly.
func (f *FakeRepository) SeedPrinting(p domain.Printing) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.printings[p.ID] = p
}

func (f *FakeRepository) GetCardByID(_ context.Context, cardID int) (*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cards[cardID]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	return &c, nil
}

func (f *FakeRepository) ListCards(_ context.Context, nameFilter string) ([]domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cards []domain.Card
	for _, c := range f.cards {
		if nameFilter == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
	return cards, nil
}

func (f *FakeRepository) GetPrintingByID(_ context.Context, printingID int) (*domain.Printing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.printings[printingID]
	if !ok {
		return nil, domain.ErrPrintingNotFound
	}
	return &p, nil
}

func (f *FakeRepository) ListPrintingsByCard(_ context.Context, cardID int) ([]domain.Printing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var printings []domain.Printing
	for _, p := range f.printings {
		if p.CardID == cardID {
			printings = append(printings, p)
		}
	}
	sort.Slice(printings, func(i, j int) bool { return printings[i].ID < printings[j].ID })
	return printings, nil
}

func (f *FakeRepository) PrintingExists(_ context.Context, printingID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ExistsCalls++
	_, ok := f.printings[printingID]
	return ok, nil
}

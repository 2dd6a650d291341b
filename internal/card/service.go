package card

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/metrics"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	GetCard(ctx context.Context, cardID int) (*domain.Card, error)
	SearchCards(ctx context.Context, nameFilter string) ([]domain.Card, error)
	GetPrinting(ctx context.Context, printingID int) (*domain.Printing, error)
	ListPrintings(ctx context.Context, cardID int) ([]domain.Printing, error)

	// PrintingExists is the precondition check run before any quantity
	// adjustment is accepted. Positive and negative answers are cached.
	PrintingExists(ctx context.Context, printingID int) (bool, error)

	CacheStats() CacheStats
}

type service struct {
	repo  repository.Card
	cache *printingCache
	fold  cases.Caser
}

// NewService creates a new catalog service
func NewService(repo repository.Card) Service {
	return &service{
		repo:  repo,
		cache: newPrintingCache(DefaultCacheSize, DefaultCacheTTL),
		fold:  cases.Fold(),
	}
}

func (s *service) GetCard(ctx context.Context, cardID int) (*domain.Card, error) {
	return s.repo.GetCardByID(ctx, cardID)
}

// SearchCards lists cards matching the optional name filter. Folding the
// filter keeps lookups case-insensitive for non-ASCII card names too.
func (s *service) SearchCards(ctx context.Context, nameFilter string) ([]domain.Card, error) {
	metrics.CardSearches.Inc()

	filter := strings.TrimSpace(nameFilter)
	if filter != "" {
		filter = s.fold.String(filter)
	}
	return s.repo.ListCards(ctx, filter)
}

func (s *service) GetPrinting(ctx context.Context, printingID int) (*domain.Printing, error) {
	return s.repo.GetPrintingByID(ctx, printingID)
}

func (s *service) ListPrintings(ctx context.Context, cardID int) ([]domain.Printing, error) {
	if _, err := s.repo.GetCardByID(ctx, cardID); err != nil {
		return nil, err
	}
	return s.repo.ListPrintingsByCard(ctx, cardID)
}

func (s *service) PrintingExists(ctx context.Context, printingID int) (bool, error) {
	if exists, ok := s.cache.Get(printingID); ok {
		return exists, nil
	}

	exists, err := s.repo.PrintingExists(ctx, printingID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to check printing existence", "error", err, "printing_id", printingID)
		return false, err
	}

	s.cache.Put(printingID, exists)
	return exists, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// Cache sizing for printing-existence lookups.
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 5 * time.Minute
)

package collection

import (
	"context"
	"fmt"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/metrics"
	"github.com/osse101/CardBinder_Go/internal/repository"
	"github.com/osse101/CardBinder_Go/internal/utils"
)

// PrintingChecker answers whether a printing exists in the catalog. The card
// service implements this; adjustments refuse unknown printings up front.
type PrintingChecker interface {
	PrintingExists(ctx context.Context, printingID int) (bool, error)
}

// Service defines the interface for collection adjustments. Every counter
// mutation routes through utils.ClampDelta - raw addition never touches a
// stored quantity.
type Service interface {
	// ApplyDelta applies signed deltas to all three counters of the
	// (userID, printingID) record, saturating at 0 and MaxInt32. The
	// record is created on first non-zero adjustment and removed when all
	// counters reach zero.
	ApplyDelta(ctx context.Context, userID string, printingID int, deltaOwned, deltaWanted, deltaProxy int32) (*domain.UserCardRecord, error)

	// SetQuantities overwrites all three counters. Inputs are validated
	// non-negative at the request boundary.
	SetQuantities(ctx context.Context, userID string, printingID int, owned, wanted, proxy int32) (*domain.UserCardRecord, error)

	// QuickAdd is ApplyDelta on the owned counter only.
	QuickAdd(ctx context.Context, userID string, printingID int, quantity int32) (*domain.UserCardRecord, error)

	// BulkApply applies owned/proxy deltas per item inside one
	// transaction: either every item lands or none does.
	BulkApply(ctx context.Context, userID string, items []domain.BulkAdjustment) ([]domain.UserCardRecord, error)

	// GetCollection lists the user's holdings.
	GetCollection(ctx context.Context, userID string) ([]domain.UserCardRecord, error)
}

type service struct {
	repo    repository.Collection
	catalog PrintingChecker
}

// NewService creates a new collection service
func NewService(repo repository.Collection, catalog PrintingChecker) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) ApplyDelta(ctx context.Context, userID string, printingID int, deltaOwned, deltaWanted, deltaProxy int32) (*domain.UserCardRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.requirePrinting(ctx, printingID); err != nil {
		return nil, err
	}

	var result *domain.UserCardRecord
	err := s.withTx(ctx, func(tx repository.CollectionTx) error {
		record, err := loadOrZero(ctx, tx, userID, printingID)
		if err != nil {
			return err
		}

		record.QuantityOwned = utils.ClampDelta(record.QuantityOwned, deltaOwned)
		record.QuantityWanted = utils.ClampDelta(record.QuantityWanted, deltaWanted)
		record.QuantityProxyOwned = utils.ClampDelta(record.QuantityProxyOwned, deltaProxy)

		result = record
		return persist(ctx, tx, *record)
	})
	if err != nil {
		return nil, err
	}

	recordAdjustmentMetrics(deltaOwned, deltaWanted, deltaProxy)
	log.Debug("Applied quantity delta",
		"user_id", userID, "printing_id", printingID,
		"owned", result.QuantityOwned, "wanted", result.QuantityWanted, "proxy", result.QuantityProxyOwned)
	return result, nil
}

func (s *service) SetQuantities(ctx context.Context, userID string, printingID int, owned, wanted, proxy int32) (*domain.UserCardRecord, error) {
	if err := s.requirePrinting(ctx, printingID); err != nil {
		return nil, err
	}

	record := domain.UserCardRecord{
		UserID:             userID,
		CardPrintingID:     printingID,
		QuantityOwned:      owned,
		QuantityWanted:     wanted,
		QuantityProxyOwned: proxy,
	}

	err := s.withTx(ctx, func(tx repository.CollectionTx) error {
		return persist(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *service) QuickAdd(ctx context.Context, userID string, printingID int, quantity int32) (*domain.UserCardRecord, error) {
	return s.ApplyDelta(ctx, userID, printingID, quantity, 0, 0)
}

func (s *service) BulkApply(ctx context.Context, userID string, items []domain.BulkAdjustment) ([]domain.UserCardRecord, error) {
	log := logger.FromContext(ctx)

	// Validate every printing before touching the store so a bad item
	// cannot abort a half-applied batch.
	for _, item := range items {
		if err := s.requirePrinting(ctx, item.CardPrintingID); err != nil {
			return nil, err
		}
	}

	results := make([]domain.UserCardRecord, 0, len(items))
	err := s.withTx(ctx, func(tx repository.CollectionTx) error {
		for _, item := range items {
			record, err := loadOrZero(ctx, tx, userID, item.CardPrintingID)
			if err != nil {
				return err
			}

			record.QuantityOwned = utils.ClampDelta(record.QuantityOwned, item.OwnedDelta)
			record.QuantityProxyOwned = utils.ClampDelta(record.QuantityProxyOwned, item.ProxyDelta)

			if err := persist(ctx, tx, *record); err != nil {
				return err
			}
			results = append(results, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BulkItemsApplied.Add(float64(len(items)))
	log.Info("Bulk adjustment applied", "user_id", userID, "items", len(items))
	return results, nil
}

func (s *service) GetCollection(ctx context.Context, userID string) ([]domain.UserCardRecord, error) {
	return s.repo.ListRecords(ctx, userID)
}

func (s *service) requirePrinting(ctx context.Context, printingID int) error {
	exists, err := s.catalog.PrintingExists(ctx, printingID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: printing %d", domain.ErrPrintingNotFound, printingID)
	}
	return nil
}

func recordAdjustmentMetrics(deltaOwned, deltaWanted, deltaProxy int32) {
	if deltaOwned != 0 {
		metrics.QuantityAdjustments.WithLabelValues(metrics.CounterOwned).Inc()
	}
	if deltaWanted != 0 {
		metrics.QuantityAdjustments.WithLabelValues(metrics.CounterWanted).Inc()
	}
	if deltaProxy != 0 {
		metrics.QuantityAdjustments.WithLabelValues(metrics.CounterProxy).Inc()
	}
}

// loadOrZero reads the locked record, synthesizing an all-zero one when the
// user has no holdings for the printing yet.
func loadOrZero(ctx context.Context, tx repository.CollectionTx, userID string, printingID int) (*domain.UserCardRecord, error) {
	record, err := tx.GetRecordForUpdate(ctx, userID, printingID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &domain.UserCardRecord{UserID: userID, CardPrintingID: printingID}
	}
	return record, nil
}

// persist writes all three counters together, or removes the row when they
// are all zero so empty records read as absent.
func persist(ctx context.Context, tx repository.CollectionTx, record domain.UserCardRecord) error {
	if record.IsEmpty() {
		return tx.DeleteRecord(ctx, record.UserID, record.CardPrintingID)
	}
	return tx.UpsertRecord(ctx, record)
}

// withTx executes a function within a transaction.
// It handles begin, commit, and rollback automatically.
func (s *service) withTx(ctx context.Context, operation func(tx repository.CollectionTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := operation(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Error("Failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

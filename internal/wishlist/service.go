package wishlist

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/metrics"
	"github.com/osse101/CardBinder_Go/internal/repository"
	"github.com/osse101/CardBinder_Go/internal/utils"
)

// PrintingChecker answers whether a printing exists in the catalog.
type PrintingChecker interface {
	PrintingExists(ctx context.Context, printingID int) (bool, error)
}

// Service defines the interface for wishlist operations. The wishlist is the
// wanted counter of the same records the collection service maintains, so
// both services share one repository.
type Service interface {
	// SetWanted overwrites the wanted counter, leaving owned and proxy
	// counters untouched.
	SetWanted(ctx context.Context, userID string, printingID int, wanted int32) (*domain.UserCardRecord, error)

	// ApplyWantedDelta applies a signed delta to the wanted counter,
	// saturating at 0 and MaxInt32.
	ApplyWantedDelta(ctx context.Context, userID string, printingID int, delta int32) (*domain.UserCardRecord, error)

	// QuickAdd increments the wanted counter.
	QuickAdd(ctx context.Context, userID string, printingID int, quantity int32) (*domain.UserCardRecord, error)

	// MoveToCollection converts wanted copies into owned (or proxy) ones.
	// Wanted is floored at zero rather than rejected, so moving more than
	// is wanted simply clears the want.
	MoveToCollection(ctx context.Context, userID string, printingID int, quantity int32, useProxy bool) (*domain.MoveResult, error)

	// GetWishlist lists the user's records with a non-zero wanted count.
	GetWishlist(ctx context.Context, userID string) ([]domain.UserCardRecord, error)
}

type service struct {
	repo    repository.Collection
	catalog PrintingChecker
}

// NewService creates a new wishlist service
func NewService(repo repository.Collection, catalog PrintingChecker) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) SetWanted(ctx context.Context, userID string, printingID int, wanted int32) (*domain.UserCardRecord, error) {
	return s.mutateWanted(ctx, userID, printingID, func(current int32) int32 {
		return utils.ClampInt32(wanted)
	})
}

func (s *service) ApplyWantedDelta(ctx context.Context, userID string, printingID int, delta int32) (*domain.UserCardRecord, error) {
	return s.mutateWanted(ctx, userID, printingID, func(current int32) int32 {
		return utils.ClampDelta(current, delta)
	})
}

func (s *service) QuickAdd(ctx context.Context, userID string, printingID int, quantity int32) (*domain.UserCardRecord, error) {
	return s.ApplyWantedDelta(ctx, userID, printingID, quantity)
}

func (s *service) MoveToCollection(ctx context.Context, userID string, printingID int, quantity int32, useProxy bool) (*domain.MoveResult, error) {
	log := logger.FromContext(ctx)

	if err := s.requirePrinting(ctx, printingID); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: move quantity must not be negative", domain.ErrInvalidInput)
	}

	var result *domain.MoveResult
	err := s.withTx(ctx, func(tx repository.CollectionTx) error {
		record, err := loadOrZero(ctx, tx, userID, printingID)
		if err != nil {
			return err
		}

		record.QuantityWanted = utils.ClampDelta(record.QuantityWanted, -quantity)
		if useProxy {
			record.QuantityProxyOwned = utils.ClampDelta(record.QuantityProxyOwned, quantity)
		} else {
			record.QuantityOwned = utils.ClampDelta(record.QuantityOwned, quantity)
		}

		result = &domain.MoveResult{
			CardPrintingID:          printingID,
			WantedAfter:             record.QuantityWanted,
			OwnedAfter:              record.QuantityOwned,
			ProxyAfter:              record.QuantityProxyOwned,
			Availability:            int64(record.QuantityOwned),
			AvailabilityWithProxies: int64(record.QuantityOwned) + int64(record.QuantityProxyOwned),
		}
		return persist(ctx, tx, *record)
	})
	if err != nil {
		return nil, err
	}

	metrics.WishlistMoves.WithLabelValues(strconv.FormatBool(useProxy)).Inc()
	log.Info("Moved wishlist copies to collection",
		"user_id", userID, "printing_id", printingID,
		"quantity", quantity, "use_proxy", useProxy)
	return result, nil
}

func (s *service) GetWishlist(ctx context.Context, userID string) ([]domain.UserCardRecord, error) {
	return s.repo.ListWantedRecords(ctx, userID)
}

// mutateWanted rewrites the wanted counter inside a transaction, keeping the
// zero-record-deletes-row rule.
func (s *service) mutateWanted(ctx context.Context, userID string, printingID int, apply func(current int32) int32) (*domain.UserCardRecord, error) {
	if err := s.requirePrinting(ctx, printingID); err != nil {
		return nil, err
	}

	var result *domain.UserCardRecord
	err := s.withTx(ctx, func(tx repository.CollectionTx) error {
		record, err := loadOrZero(ctx, tx, userID, printingID)
		if err != nil {
			return err
		}

		record.QuantityWanted = apply(record.QuantityWanted)
		result = record
		return persist(ctx, tx, *record)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
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

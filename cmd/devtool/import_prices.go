package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/database"
	"github.com/osse101/CardBinder_Go/internal/database/postgres"
	"github.com/osse101/CardBinder_Go/internal/importfile"
	"github.com/osse101/CardBinder_Go/internal/price"
)

type ImportPricesCommand struct{}

func (c *ImportPricesCommand) Name() string {
	return "import-prices"
}

func (c *ImportPricesCommand) Description() string {
	return "Load a price feed file into the price history"
}

func (c *ImportPricesCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("price feed file path required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read price feed file: %w", err)
	}

	feed, err := importfile.ParsePriceFeed(data)
	if err != nil {
		return err
	}
	if len(feed.Prices) == 0 {
		PrintInfo("Price feed is empty, nothing to do")
		return nil
	}

	ctx := context.Background()

	PrintInfo("Connecting to database...")
	pool, err := database.NewPool(ctx, databaseURL(), 4, 5*time.Minute, 30*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	catalog := card.NewService(postgres.NewCardRepository(pool))
	svc := price.NewService(postgres.NewPriceRepository(pool), catalog)

	for _, entry := range feed.Prices {
		if err := svc.RecordPrice(ctx, entry.PrintingID, entry.PriceCents, entry.RecordedAt); err != nil {
			return fmt.Errorf("failed to record price for printing %d: %w", entry.PrintingID, err)
		}
	}

	PrintSuccess("Recorded %d price points", len(feed.Prices))
	return nil
}

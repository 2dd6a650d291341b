package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CardBinder_Go/internal/database"
	"github.com/osse101/CardBinder_Go/internal/seed"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load the seed catalog and initial administrator"
}

func (c *SeedCommand) Run(args []string) error {
	ctx := context.Background()

	PrintInfo("Connecting to database...")
	pool, err := database.NewPool(ctx, databaseURL(), 4, 5*time.Minute, 30*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	PrintSuccess("Seed completed successfully")
	return nil
}

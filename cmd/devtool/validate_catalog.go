package main

import (
	"fmt"
	"os"

	"github.com/osse101/CardBinder_Go/internal/importfile"
)

type ValidateCatalogCommand struct{}

func (c *ValidateCatalogCommand) Name() string {
	return "validate-catalog"
}

func (c *ValidateCatalogCommand) Description() string {
	return "Validate a catalog import file against the schema"
}

func (c *ValidateCatalogCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("catalog file path required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	catalog, err := importfile.ParseCatalog(data)
	if err != nil {
		return err
	}

	printings := 0
	for _, card := range catalog.Cards {
		printings += len(card.Printings)
	}
	PrintSuccess("Catalog is valid: %d cards, %d printings", len(catalog.Cards), printings)
	return nil
}

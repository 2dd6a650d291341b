// Package importfile parses payloads delivered by import sources, catalog
// feeds and price feeds. Payloads are validated against a JSON schema
// before they are decoded, so malformed feeds are rejected with a
// field-level error instead of half-loading.
package importfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed card_catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaName = "card_catalog.schema.json"

// Catalog is a decoded catalog payload.
type Catalog struct {
	Cards []CatalogCard `json:"cards"`
}

// CatalogCard is one card entry with its printings.
type CatalogCard struct {
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Text      string            `json:"text"`
	Printings []CatalogPrinting `json:"printings"`
}

// CatalogPrinting is one printing entry of a catalog card.
type CatalogPrinting struct {
	SetCode         string `json:"setCode"`
	CollectorNumber string `json:"collectorNumber"`
	Rarity          string `json:"rarity"`
	Style           string `json:"style"`
	ImageURL        string `json:"imageUrl"`
}

// schemaBox compiles an embedded schema once and caches the result.
type schemaBox struct {
	name string
	raw  []byte

	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

func (b *schemaBox) load() (*jsonschema.Schema, error) {
	b.once.Do(func() {
		var doc interface{}
		if err := json.Unmarshal(b.raw, &doc); err != nil {
			b.err = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(b.name, doc); err != nil {
			b.err = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		b.schema, b.err = compiler.Compile(b.name)
	})
	return b.schema, b.err
}

var catalogSchema = &schemaBox{name: catalogSchemaName, raw: catalogSchemaJSON}

// ParseCatalog validates data against the catalog schema and decodes it.
func ParseCatalog(data []byte) (*Catalog, error) {
	s, err := catalogSchema.load()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return nil, formatValidationError("catalog", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &catalog, nil
}

// formatValidationError flattens nested schema errors into one message
// listing every failing location.
func formatValidationError(kind string, err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}
	var errors []string
	collectErrors(validationErr, &errors)
	return fmt.Errorf("%s validation failed:\n%s", kind, strings.Join(errors, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywordPath := err.ErrorKind.KeywordPath()
		if len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

package importsource

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// Service defines the interface for managing import sources. These are
// admin-only configuration records for upstream catalog and price feeds.
type Service interface {
	CreateSource(ctx context.Context, name, rawURL, kind string, enabled bool) (*domain.ImportSource, error)
	GetSource(ctx context.Context, sourceID int) (*domain.ImportSource, error)
	ListSources(ctx context.Context) ([]domain.ImportSource, error)
	UpdateSource(ctx context.Context, sourceID int, name, rawURL, kind string, enabled bool) (*domain.ImportSource, error)
	DeleteSource(ctx context.Context, sourceID int) error
}

type service struct {
	repo repository.ImportSource
}

// NewService creates a new import source service
func NewService(repo repository.ImportSource) Service {
	return &service{repo: repo}
}

func (s *service) CreateSource(ctx context.Context, name, rawURL, kind string, enabled bool) (*domain.ImportSource, error) {
	log := logger.FromContext(ctx)

	if err := validateSource(name, rawURL, kind); err != nil {
		return nil, err
	}

	source := &domain.ImportSource{
		Name:    strings.TrimSpace(name),
		URL:     rawURL,
		Kind:    kind,
		Enabled: enabled,
	}
	if err := s.repo.CreateImportSource(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to create import source: %w", err)
	}

	log.Info("Import source created", "source_id", source.ID, "name", source.Name, "kind", kind)
	return source, nil
}

func (s *service) GetSource(ctx context.Context, sourceID int) (*domain.ImportSource, error) {
	source, err := s.repo.GetImportSourceByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("%w: source %d", domain.ErrImportSourceNotFound, sourceID)
	}
	return source, nil
}

func (s *service) ListSources(ctx context.Context) ([]domain.ImportSource, error) {
	return s.repo.ListImportSources(ctx)
}

func (s *service) UpdateSource(ctx context.Context, sourceID int, name, rawURL, kind string, enabled bool) (*domain.ImportSource, error) {
	source, err := s.GetSource(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if err := validateSource(name, rawURL, kind); err != nil {
		return nil, err
	}

	source.Name = strings.TrimSpace(name)
	source.URL = rawURL
	source.Kind = kind
	source.Enabled = enabled
	if err := s.repo.UpdateImportSource(ctx, *source); err != nil {
		return nil, fmt.Errorf("failed to update import source: %w", err)
	}
	return source, nil
}

func (s *service) DeleteSource(ctx context.Context, sourceID int) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetSource(ctx, sourceID); err != nil {
		return err
	}
	if err := s.repo.DeleteImportSource(ctx, sourceID); err != nil {
		return fmt.Errorf("failed to delete import source: %w", err)
	}

	log.Info("Import source deleted", "source_id", sourceID)
	return nil
}

func validateSource(name, rawURL, kind string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: source name must not be empty", domain.ErrInvalidInput)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: source url must be absolute", domain.ErrInvalidInput)
	}
	switch kind {
	case domain.ImportSourceKindCatalog, domain.ImportSourceKindPrices:
		return nil
	default:
		return fmt.Errorf("%w: unknown source kind %q", domain.ErrInvalidInput, kind)
	}
}

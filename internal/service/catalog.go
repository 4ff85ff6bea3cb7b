package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
)

var ErrInstrumentNotFound = domain.ErrInstrumentNotFound

type InstrumentRepository interface {
	Seed(ctx context.Context, instruments []domain.Instrument) error
	FindAll(ctx context.Context) ([]domain.Instrument, error)
	FindByCategory(ctx context.Context, category string) (domain.Instrument, error)
}

type CatalogService struct {
	repo InstrumentRepository
}

func NewCatalogService(repo InstrumentRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Seed writes the fixed catalog. It is safe to run on every start.
func (s *CatalogService) Seed(ctx context.Context) error {
	if err := s.repo.Seed(ctx, domain.Catalog); err != nil {
		return fmt.Errorf("s.repo.Seed -> %w", err)
	}

	return nil
}

func (s *CatalogService) ListInstruments(ctx context.Context) ([]domain.Instrument, error) {
	instruments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return instruments, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	instruments, err := s.ListInstruments(ctx)
	if err != nil {
		return nil, err
	}

	return domain.Categories(instruments), nil
}

func (s *CatalogService) GetByCategory(ctx context.Context, category string) (domain.Instrument, error) {
	instrument, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return domain.Instrument{}, fmt.Errorf("s.repo.FindByCategory -> %w", err)
	}

	return instrument, nil
}

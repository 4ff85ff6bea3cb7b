package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository/dao"
)

type InstrumentDAO interface {
	Upsert(ctx context.Context, instruments []dao.Instrument) error
	FindAll(ctx context.Context) ([]dao.Instrument, error)
	FindByCategory(ctx context.Context, category string) (dao.Instrument, error)
}

// InstrumentCache is an optional read-through cache for the catalog.
type InstrumentCache interface {
	GetAll(ctx context.Context) ([]domain.Instrument, bool)
	SetAll(ctx context.Context, instruments []domain.Instrument)
	Invalidate(ctx context.Context)
}

type InstrumentRepository struct {
	dao   InstrumentDAO
	cache InstrumentCache
}

func NewInstrumentRepository(dao InstrumentDAO, cache InstrumentCache) *InstrumentRepository {
	return &InstrumentRepository{
		dao:   dao,
		cache: cache,
	}
}

func (r *InstrumentRepository) Seed(ctx context.Context, instruments []domain.Instrument) error {
	rows := make([]dao.Instrument, len(instruments))
	for i, instrument := range instruments {
		rows[i] = r.domainToDao(instrument)
	}

	if err := r.dao.Upsert(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	if r.cache != nil {
		r.cache.Invalidate(ctx)
	}

	return nil
}

func (r *InstrumentRepository) FindAll(ctx context.Context) ([]domain.Instrument, error) {
	if r.cache != nil {
		if cached, ok := r.cache.GetAll(ctx); ok {
			return cached, nil
		}
	}

	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	instruments := make([]domain.Instrument, len(found))
	for i, instrument := range found {
		instruments[i] = r.daoToDomain(instrument)
	}

	if r.cache != nil {
		r.cache.SetAll(ctx, instruments)
	}

	return instruments, nil
}

func (r *InstrumentRepository) FindByCategory(ctx context.Context, category string) (domain.Instrument, error) {
	if r.cache != nil {
		if cached, ok := r.cache.GetAll(ctx); ok {
			for _, instrument := range cached {
				if strings.EqualFold(instrument.Category, category) {
					return instrument, nil
				}
			}
			return domain.Instrument{}, domain.ErrInstrumentNotFound
		}
	}

	found, err := r.dao.FindByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, dao.ErrInstrumentNotFound) {
			return domain.Instrument{}, domain.ErrInstrumentNotFound
		}

		return domain.Instrument{}, fmt.Errorf("r.dao.FindByCategory -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InstrumentRepository) daoToDomain(i dao.Instrument) domain.Instrument {
	return domain.Instrument{
		ID:          i.ID,
		Category:    i.Category,
		Name:        i.Name,
		Image:       i.Image,
		Price:       i.Price,
		Description: i.Description,
		Rating:      i.Rating,
	}
}

func (r *InstrumentRepository) domainToDao(i domain.Instrument) dao.Instrument {
	return dao.Instrument{
		ID:          i.ID,
		Category:    i.Category,
		Name:        i.Name,
		Image:       i.Image,
		Price:       i.Price,
		Description: i.Description,
		Rating:      i.Rating,
	}
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository/dao"
)

type fakeInstrumentDAO struct {
	rows     []dao.Instrument
	findAlls int
	err      error
}

func (f *fakeInstrumentDAO) Upsert(_ context.Context, instruments []dao.Instrument) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows[:0], instruments...)
	return nil
}

func (f *fakeInstrumentDAO) FindAll(_ context.Context) ([]dao.Instrument, error) {
	f.findAlls++
	return f.rows, f.err
}

func (f *fakeInstrumentDAO) FindByCategory(_ context.Context, category string) (dao.Instrument, error) {
	if f.err != nil {
		return dao.Instrument{}, f.err
	}
	for _, row := range f.rows {
		if row.Category == category {
			return row, nil
		}
	}
	return dao.Instrument{}, dao.ErrInstrumentNotFound
}

type fakeInstrumentCache struct {
	instruments []domain.Instrument
	set         bool
	invalidated int
}

func (f *fakeInstrumentCache) GetAll(_ context.Context) ([]domain.Instrument, bool) {
	return f.instruments, f.set
}

func (f *fakeInstrumentCache) SetAll(_ context.Context, instruments []domain.Instrument) {
	f.instruments = instruments
	f.set = true
}

func (f *fakeInstrumentCache) Invalidate(_ context.Context) {
	f.instruments = nil
	f.set = false
	f.invalidated++
}

func TestInstrumentRepositoryWithoutCache(t *testing.T) {
	d := &fakeInstrumentDAO{}
	r := NewInstrumentRepository(d, nil)
	ctx := context.Background()

	require.NoError(t, r.Seed(ctx, domain.Catalog))

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Categories(domain.Catalog), domain.Categories(all))

	guitar, err := r.FindByCategory(ctx, "Guitar")
	require.NoError(t, err)
	assert.Equal(t, 125, guitar.Price)

	_, err = r.FindByCategory(ctx, "Banjo")
	assert.ErrorIs(t, err, domain.ErrInstrumentNotFound)
}

func TestInstrumentRepositoryReadThroughCache(t *testing.T) {
	d := &fakeInstrumentDAO{}
	c := &fakeInstrumentCache{}
	r := NewInstrumentRepository(d, c)
	ctx := context.Background()

	require.NoError(t, r.Seed(ctx, domain.Catalog))
	assert.Equal(t, 1, c.invalidated)

	_, err := r.FindAll(ctx)
	require.NoError(t, err)
	_, err = r.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.findAlls)

	flute, err := r.FindByCategory(ctx, "flute")
	require.NoError(t, err)
	assert.Equal(t, "Brannet-Cooper Flute", flute.Name)

	_, err = r.FindByCategory(ctx, "Banjo")
	assert.ErrorIs(t, err, domain.ErrInstrumentNotFound)
}

func TestInstrumentRepositoryWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	r := NewInstrumentRepository(&fakeInstrumentDAO{err: boom}, nil)

	_, err := r.FindAll(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = r.FindByCategory(context.Background(), "Piano")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInstrumentNotFound)
}

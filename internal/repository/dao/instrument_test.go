package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentDAO(t *testing.T) {
	d := NewInstrumentDAO(requireDB(t))
	ctx := context.Background()

	require.NoError(t, d.Upsert(ctx, []Instrument{
		{Category: "Piano", Name: "Steinway Piano", Image: "piano.png", Price: 250, Rating: 4.9},
		{Category: "Guitar", Name: "Black Strat Guitar", Image: "guitar.png", Price: 125, Rating: 4.7},
	}))

	// Upserting again updates in place instead of duplicating.
	require.NoError(t, d.Upsert(ctx, []Instrument{
		{Category: "Piano", Name: "Steinway Piano", Image: "piano.png", Price: 300, Rating: 4.9},
	}))

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Piano", all[0].Category)
	assert.Equal(t, "Guitar", all[1].Category)

	piano, err := d.FindByCategory(ctx, "piano")
	require.NoError(t, err)
	assert.Equal(t, 300, piano.Price)

	_, err = d.FindByCategory(ctx, "Banjo")
	assert.ErrorIs(t, err, ErrInstrumentNotFound)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository/dao"
)

type fakeCreditsDAO struct {
	balance int
}

func (f *fakeCreditsDAO) FindByUserID(_ context.Context, userID uint) (dao.Credits, error) {
	return dao.Credits{UserID: userID, Balance: f.balance}, nil
}

func (f *fakeCreditsDAO) Add(_ context.Context, userID uint, amount int) (dao.Credits, error) {
	f.balance += amount
	return dao.Credits{UserID: userID, Balance: f.balance}, nil
}

func (f *fakeCreditsDAO) Deduct(_ context.Context, userID uint, amount int) (dao.Credits, error) {
	if f.balance < amount {
		return dao.Credits{UserID: userID, Balance: f.balance}, dao.ErrInsufficientCredits
	}
	f.balance -= amount
	return dao.Credits{UserID: userID, Balance: f.balance}, nil
}

func (f *fakeCreditsDAO) Set(_ context.Context, userID uint, balance int) (dao.Credits, error) {
	f.balance = balance
	return dao.Credits{UserID: userID, Balance: balance}, nil
}

func TestCreditsRepositoryDeduct(t *testing.T) {
	r := NewCreditsRepository(&fakeCreditsDAO{balance: 300})
	ctx := context.Background()

	remaining, err := r.Deduct(ctx, 1, 200)
	require.NoError(t, err)
	assert.Equal(t, 100, remaining)

	remaining, err = r.Deduct(ctx, 1, 150)
	ice, ok := domain.IsInsufficientCredits(err)
	require.True(t, ok)
	assert.Equal(t, 150, ice.Needed)
	assert.Equal(t, 100, ice.Available)
	assert.Equal(t, 100, remaining)

	balance, err := r.Add(ctx, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)

	require.NoError(t, r.Set(ctx, 1, 7))
	balance, err = r.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, balance)
}

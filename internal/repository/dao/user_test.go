package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDAO(t *testing.T) {
	d := NewUserDAO(requireDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, User{Email: "user-dao@example.com", Password: "hash", Name: "Jane"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = d.Insert(ctx, User{Email: "user-dao@example.com", Password: "hash", Name: "Jane"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	found, err := d.FindByEmail(ctx, "user-dao@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	found, err = d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.Name)

	_, err = d.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = d.FindByID(ctx, 999999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

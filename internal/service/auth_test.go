package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	created, err := svc.Signup(ctx, domain.User{Email: "ana@example.com", Password: "secret123", Name: "Ana"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "secret123", created.Password)

	_, err = svc.Signup(ctx, domain.User{Email: "ana@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	user, err := svc.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "ana@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "bob@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceGetAccount(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	created, err := users.Create(ctx, domain.User{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	svc := NewUserService(users, newFakeCreditsRepo())

	account, err := svc.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", account.Name)
	assert.Equal(t, domain.DefaultCreditsBalance, account.Credits)

	_, err = svc.GetAccount(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type BalanceReader interface {
	Balance(ctx context.Context, userID uint) (int, error)
}

type UserService struct {
	repo    UserRepository
	credits BalanceReader
}

func NewUserService(repo UserRepository, credits BalanceReader) *UserService {
	return &UserService{
		repo:    repo,
		credits: credits,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// GetAccount returns the user along with the current credits balance.
func (s *UserService) GetAccount(ctx context.Context, id uint) (domain.Account, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	balance, err := s.credits.Balance(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.credits.Balance -> %w", err)
	}

	return domain.Account{
		User:    user,
		Credits: balance,
	}, nil
}

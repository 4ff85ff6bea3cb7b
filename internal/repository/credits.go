package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository/dao"
)

type CreditsDAO interface {
	FindByUserID(ctx context.Context, userID uint) (dao.Credits, error)
	Add(ctx context.Context, userID uint, amount int) (dao.Credits, error)
	Deduct(ctx context.Context, userID uint, amount int) (dao.Credits, error)
	Set(ctx context.Context, userID uint, balance int) (dao.Credits, error)
}

type CreditsRepository struct {
	dao CreditsDAO
}

func NewCreditsRepository(dao CreditsDAO) *CreditsRepository {
	return &CreditsRepository{
		dao: dao,
	}
}

func (r *CreditsRepository) Balance(ctx context.Context, userID uint) (int, error) {
	credits, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return credits.Balance, nil
}

func (r *CreditsRepository) Add(ctx context.Context, userID uint, amount int) (int, error) {
	credits, err := r.dao.Add(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Add -> %w", err)
	}

	return credits.Balance, nil
}

// Deduct returns a *domain.InsufficientCreditsError when the balance does
// not cover amount.
func (r *CreditsRepository) Deduct(ctx context.Context, userID uint, amount int) (int, error) {
	credits, err := r.dao.Deduct(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, dao.ErrInsufficientCredits) {
			return credits.Balance, &domain.InsufficientCreditsError{
				Needed:    amount,
				Available: credits.Balance,
			}
		}

		return 0, fmt.Errorf("r.dao.Deduct -> %w", err)
	}

	return credits.Balance, nil
}

func (r *CreditsRepository) Set(ctx context.Context, userID uint, balance int) error {
	if _, err := r.dao.Set(ctx, userID, balance); err != nil {
		return fmt.Errorf("r.dao.Set -> %w", err)
	}

	return nil
}
